/*
Package board implements the tile-rack game layer on top of a lexicon:
probability-weighted board randomization, rack containment with wildcard and
Qu handling, and the attack-power scoring used by the word challenge.

Game variants are plain Ruleset values (board shape plus tile table) rather
than type hierarchies; the scoring formula takes its knobs from a Modifiers
struct per call.
*/
package board

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Tile describes one letter: its damage contribution and its draw weight
// during board randomization.
type Tile struct {
	Damage      int `toml:"damage"`
	Probability int `toml:"probability"`
}

// Ruleset is the per-variant configuration for a board: shape and tile
// table. Tiles are keyed by their single-character label, "?" is the
// wildcard tile.
type Ruleset struct {
	Name   string
	Width  int
	Height int
	Tiles  map[string]Tile
}

// tileFile mirrors the TOML layout of a tile table document.
type tileFile struct {
	Tiles map[string]Tile `toml:"tiles"`
}

//go:embed tiles_classic.toml
var classicTileData []byte

// ClassicRuleset returns the 4x4 ruleset backed by the embedded tile table.
func ClassicRuleset() Ruleset {
	tiles, err := decodeTiles(classicTileData)
	if err != nil {
		// The embedded table ships with the binary and is covered by tests.
		log.Fatalf("Embedded tile table is unreadable: %v", err)
	}
	return Ruleset{Name: "classic", Width: 4, Height: 4, Tiles: tiles}
}

// LoadTileTable reads a tile table override from a TOML file.
func LoadTileTable(path string) (map[string]Tile, error) {
	var doc tileFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("loading tile table %s: %w", path, err)
	}
	if len(doc.Tiles) == 0 {
		return nil, fmt.Errorf("tile table %s defines no tiles", path)
	}
	return doc.Tiles, nil
}

func decodeTiles(data []byte) (map[string]Tile, error) {
	var doc tileFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Tiles) == 0 {
		return nil, fmt.Errorf("tile table defines no tiles")
	}
	return doc.Tiles, nil
}
