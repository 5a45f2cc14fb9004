// Copyright 2026 The WordForge Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the WordForge dictionary trainer and IPC server.

WordForge keeps a mutable dictionary in an ordered trie and lets you query it
interactively: membership checks, regex search, bounded correction lookups,
random draws, rack analysis and the word challenge minigame. It can also run
as a MessagePack IPC server so other processes can query the same dictionary.

# Usage

Start the interactive console with the embedded starter dictionary:

	wordforge

Point it at real word lists and enable debug logging:

	wordforge -dict /usr/share/dict/words -metal metals.txt -d

Run the MessagePack IPC server instead of the console:

	wordforge -serve

# Configuration

Runtime configuration is managed through a TOML file covering the word
sources, the rack layout and the challenge defaults:

	[lexicon]
	dictionary_path = "/usr/share/dict/words"
	metal_dictionary_path = "metals.txt"

	[board]
	width = 4
	height = 4
	tile_table_path = ""

	[challenge]
	default_racks = 10
	best_words_shown = 9

The config file is automatically created with defaults if it doesn't exist.
Command line flags override the corresponding config values.

# IPC Protocol

Server mode communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
responses.

Send a lookup request:

	{"id": "req1", "op": "lookup", "w": "quartz"}

Receive the verdict:

	{"id": "req1", "ok": true, "f": true, "t": 110}

See the server package docs for the full op list.

# Command Line Flags

The following flags control application behavior:

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-serve
	    Run the MessagePack IPC server instead of the console
	-config string
	    Path to a config.toml (default: user config dir)
	-dict string
	    Line-based dictionary file (default: embedded starter list)
	-metal string
	    Line-based metal dictionary for the hammer bonus
	-tiles string
	    TOML tile table overriding the built-in classic table
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/calyptra/wordforge/internal/assets"
	"github.com/calyptra/wordforge/internal/cli"
	"github.com/calyptra/wordforge/pkg/board"
	"github.com/calyptra/wordforge/pkg/config"
	"github.com/calyptra/wordforge/pkg/lexicon"
	"github.com/calyptra/wordforge/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "1.0.0"
	AppName = "wordforge"
	gh      = "https://github.com/calyptra/wordforge"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionaries and the board together, then hands off to
// the console or the IPC server. It holds no query logic of its own.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the MessagePack IPC server instead of the console")
	configPath := flag.String("config", "", "Path to a config.toml")
	dictPath := flag.String("dict", "", "Line-based dictionary file (default: embedded starter list)")
	metalPath := flag.String("metal", "", "Line-based metal dictionary for the hammer bonus")
	tilesPath := flag.String("tiles", "", "TOML tile table overriding the built-in classic table")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Active config: %s", config.GetActiveConfigPath(activePath))

	// Flags beat config values.
	if *dictPath == "" {
		*dictPath = cfg.Lexicon.DictionaryPath
	}
	if *metalPath == "" {
		*metalPath = cfg.Lexicon.MetalPath
	}
	if *tilesPath == "" {
		*tilesPath = cfg.Board.TileTablePath
	}

	words := loadDictionary(*dictPath, assets.DefaultWords)
	metal := loadDictionary(*metalPath, assets.MetalWords)

	if *serveMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(words)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	rules := board.ClassicRuleset()
	if *tilesPath != "" {
		tiles, err := board.LoadTileTable(*tilesPath)
		if err != nil {
			log.Fatalf("Failed to load tile table: %v", err)
		}
		rules.Name = "custom"
		rules.Tiles = tiles
	}
	if cfg.Board.Width > 0 {
		rules.Width = cfg.Board.Width
	}
	if cfg.Board.Height > 0 {
		rules.Height = cfg.Board.Height
	}

	session := cli.NewSession(board.New(rules, words, metal), Version)
	session.SetChallengeDefaults(cfg.Challenge.DefaultRacks, cfg.Challenge.BestWordsShown)

	if err := session.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Console failed: %v", err)
	}
}

// loadDictionary fills a lexicon from path, or from the embedded fallback
// when no path is configured. A missing file is fatal, a silently empty
// dictionary would make every query lie.
func loadDictionary(path string, fallback func() io.Reader) *lexicon.Lexicon {
	l := lexicon.New()
	if path == "" {
		if _, err := l.AddAll(fallback()); err != nil {
			log.Fatalf("Failed to load embedded dictionary: %v", err)
		}
		log.Debugf("Loaded embedded dictionary (%d words)", l.Size())
		return l
	}
	if _, err := l.LoadFile(path); err != nil {
		log.Fatalf("Failed to load dictionary %s: %v", path, err)
	}
	return l
}

// printVersion displays the version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordForge ] Train your vocabulary, forge your attacks!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
