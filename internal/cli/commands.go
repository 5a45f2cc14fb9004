// Package cli implements the interactive trainer console: a dispatch table
// of commands evaluated against a tile board and its lexicon, plus the word
// challenge game state.
package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/calyptra/wordforge/pkg/board"
	"github.com/calyptra/wordforge/pkg/lexicon"
)

const (
	defaultChallengeRacks = 10
	defaultBestWordsShown = 9

	nameColumn  = 15
	paramColumn = 50
)

// Command binds a console keyword to its handler and help text. Hidden
// commands are omitted from plain "help" but still dispatchable.
type Command struct {
	Name     string
	Params   string
	Help     string
	Detailed string
	Hidden   bool
	Run      func(s *Session, args []string) string
}

// helpLine renders the one-line usage row shown by "help".
func (c Command) helpLine() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for sb.Len() < nameColumn {
		sb.WriteByte(' ')
	}
	sb.WriteString(c.Params)
	for sb.Len() < paramColumn {
		sb.WriteByte(' ')
	}
	sb.WriteString("| ")
	sb.WriteString(c.Help)
	return sb.String()
}

// challenge tracks one running word challenge.
type challenge struct {
	active    bool
	required  string
	racksLeft int
	maxQh     int
	currentQh int
}

// Session owns the trainer state shared between commands.
type Session struct {
	board      *board.Board
	boardReady bool
	challenge  challenge
	version    string
	racks      int
	shown      int
}

// NewSession wires a session around an existing board.
func NewSession(b *board.Board, version string) *Session {
	return &Session{
		board:   b,
		version: version,
		racks:   defaultChallengeRacks,
		shown:   defaultBestWordsShown,
	}
}

// SetChallengeDefaults overrides the configured rack count and the number of
// best words listed after each submission. Non-positive values keep the
// built-in defaults.
func (s *Session) SetChallengeDefaults(racks, shown int) {
	if racks > 0 {
		s.racks = racks
	}
	if shown > 0 {
		s.shown = shown
	}
}

// Dispatch runs the named command against the session.
func (s *Session) Dispatch(name string, args []string) string {
	for i := range commands {
		if commands[i].Name == name {
			return commands[i].Run(s, args)
		}
	}
	return fmt.Sprintf("Command %q not recognized!\nPlease type \"help\" for a list of accepted commands!", name)
}

// listWords renders a word set as a comma-separated line.
func listWords(words []string) string {
	if len(words) == 0 {
		return "No words found!"
	}
	return strings.Join(words, ", ")
}

// listBestWords renders the top entries of an already ranked word list with
// their base damage in hearts.
func (s *Session) listBestWords(best []string) string {
	var sb strings.Builder
	sb.WriteString("Best words:\n")
	for i := 0; i < len(best) && i < s.shown; i++ {
		dmg := s.board.AttackPower(best[i], board.DefaultModifiers())
		sb.WriteString(best[i])
		sb.WriteString(" - ")
		sb.WriteString(board.FormatHearts(dmg.BaseQuarterHearts))
		sb.WriteString("BH\n")
	}
	return sb.String()
}

// containsLetters reports whether word contains every query letter, counting
// repeats: a letter given twice must occur at least twice in the word.
func containsLetters(word, letters string) bool {
	var counts [256]int
	for i := 0; i < len(word); i++ {
		counts[word[i]]++
	}
	for i := 0; i < len(letters); i++ {
		counts[letters[i]]--
		if counts[letters[i]] < 0 {
			return false
		}
	}
	return true
}

// matchOrComplain runs a pattern search and folds errors into console text.
func (s *Session) matchOrComplain(expr string) string {
	words, err := s.board.Lexicon().MatchPattern(expr)
	if err != nil {
		if errors.Is(err, lexicon.ErrInvalidPattern) {
			return "Invalid regex pattern!"
		}
		return fmt.Sprintf("Search failed: %v", err)
	}
	return listWords(words)
}

// commands is populated in init so the help handlers can reference the table
// itself without an initialization cycle.
var commands []Command

func init() {
	commands = []Command{
		{
			Name:   "help",
			Params: "(command1) (command2) ...",
			Help:   "Displays more information about the given commands, or lists all commands if none are given",
			Detailed: "If \"help\" is called with no parameters, it displays a list of all commands.\n" +
				"If \"help\" is run with parameters, it displays detailed information about the given commands.",
			Run: runHelp,
		},
		{
			Name:     "board",
			Params:   "",
			Help:     "Displays the last printed board for convenience",
			Detailed: "Displays the last printed board again. If no such board exists, a notification of such will be shown.",
			Run: func(s *Session, _ []string) string {
				if !s.boardReady {
					return "There is no board to currently display!"
				}
				return s.board.String()
			},
		},
		{
			Name:   "wordchallenge",
			Params: "(rack count) (letters)",
			Help:   "Starts a word challenge with the given number of racks, always using any provided letters",
			Detailed: "The word challenge is a game wherein you must try to find the best words in a series of racks, submitting your best guess each board.\n" +
				"The best words are shown after each submission, and a final score is shown at the end.\n" +
				"The number of racks can be manually supplied, and letters required to be in each rack can also be supplied.",
			Run: runWordChallenge,
		},
		{
			Name:     "submit",
			Params:   "<word>",
			Help:     "Submits a word for the word challenge",
			Detailed: "Submits a word for the word challenge.\nIf a word challenge is not currently active, a notification will be displayed.",
			Hidden:   true,
			Run:      runSubmit,
		},
		{
			Name:     "isword",
			Params:   "<word1> (word2) ...",
			Help:     "Tests whether the given words are accepted",
			Detailed: "Lists the words in the given order, denoting next to each one whether or not the dictionary accepts it.",
			Run: func(s *Session, args []string) string {
				if len(args) == 0 {
					return "No words supplied!"
				}
				lines := make([]string, len(args))
				for i, arg := range args {
					verdict := "NOT "
					if s.board.Lexicon().ContainsWord(strings.ToLower(arg)) {
						verdict = ""
					}
					lines[i] = fmt.Sprintf("%s is %saccepted", arg, verdict)
				}
				return strings.Join(lines, "\n")
			},
		},
		{
			Name:   "attack",
			Params: "<word1> (word2) ... (specifiers)",
			Help:   "Gives the attack potential of the given words",
			Detailed: "Finds the base heart damage and final quarter-heart damage of the given words using the specifications given.\n" +
				"The following specifiers are allowed:\n" +
				"'bow=' - 0 for no bow, 1 or 2 (default) for bow levels\n" +
				"'parrot=' - 0/off or 1/on (default)\n" +
				"'hammer=' - 0/off or 1/on (default)\n" +
				"'powered=' - 1 if powered up, -1 if powered down, 0 for no modifier (default)\n" +
				"'attack=' - attack power in tenths of a percent (163.3% is 'attack=1633')\n" +
				"'gem=' - gem boost as a percent ('gem=20' for 20%)\n" +
				"'armour=' - 0 for none (default), 1 for light, 2 for heavy",
			Run: runAttack,
		},
		{
			Name:     "bestwords",
			Params:   "(letters)",
			Help:     "Finds the best words in the current rack",
			Detailed: "Lists the top words in a rack.\nIn the event of a tie in BH, alphabetical order is then used.",
			Run:      runBestWords,
		},
		{
			Name:   "setboard",
			Params: "<rack>",
			Help:   "Sets the stored board to be the provided rack",
			Detailed: "Sets the board to be the provided letters.\nIf too few are supplied, the rest are filled by random letters.\n" +
				"If too many are supplied, only the first ones are used.",
			Run: func(s *Session, args []string) string {
				s.board.Randomize(strings.ToUpper(strings.Join(args, "")))
				s.challenge.active = false
				s.boardReady = true
				return s.board.String()
			},
		},
		{
			Name:     "randomboard",
			Params:   "(letters)",
			Help:     "Sends a random rack, including any given letters",
			Detailed: "Randomizes the board, including any provided letters.\nIf too many letters are supplied, an error is shown.",
			Run: func(s *Session, args []string) string {
				required := strings.Join(args, "")
				if len(required) > s.board.Width()*s.board.Height() {
					return "Error! Too many provided letters!"
				}
				s.board.Randomize(strings.ToUpper(required))
				s.boardReady = true
				s.challenge.active = false
				return s.board.String()
			},
		},
		{
			Name:     "randomword",
			Params:   "",
			Help:     "Gives a random word from the dictionary",
			Detailed: "Gives a random word from the dictionary.",
			Run: func(s *Session, _ []string) string {
				word, err := s.board.Lexicon().RandomWord()
				if err != nil {
					return "The dictionary is empty!"
				}
				return word
			},
		},
		{
			Name:     "contains",
			Params:   "<letters>",
			Help:     "Lists all words containing the given letters",
			Detailed: "Lists all words containing the given letters at any point in the word.\nRepeated query letters must occur repeatedly in a match.",
			Run: func(s *Session, args []string) string {
				if len(args) == 0 {
					return "No letters provided!"
				}
				letters := strings.ToLower(strings.Join(args, ""))
				var matches []string
				for word := range s.board.Lexicon().Words() {
					if containsLetters(word, letters) {
						matches = append(matches, word)
					}
				}
				return listWords(matches)
			},
		},
		{
			Name:     "sequence",
			Params:   "<letters>",
			Help:     "Lists all words that contain a given sequence of letters",
			Detailed: "Lists all words that contain a given sequence of letters.",
			Run: func(s *Session, args []string) string {
				if len(args) == 0 {
					return "No letters provided!"
				}
				return s.matchOrComplain(regexp.QuoteMeta(strings.Join(args, "")))
			},
		},
		{
			Name:     "begins",
			Params:   "<letters>",
			Help:     "Lists all words that start with the given letters",
			Detailed: "Lists all words that start with the given sequence of letters.",
			Run: func(s *Session, args []string) string {
				if len(args) == 0 {
					return "No letters provided!"
				}
				return s.matchOrComplain("^" + regexp.QuoteMeta(strings.Join(args, "")))
			},
		},
		{
			Name:     "ends",
			Params:   "<letters>",
			Help:     "Lists all words that end with the given letters",
			Detailed: "Lists all words that end with the given sequence of letters.",
			Run: func(s *Session, args []string) string {
				if len(args) == 0 {
					return "No letters provided!"
				}
				return s.matchOrComplain(regexp.QuoteMeta(strings.Join(args, "")) + "$")
			},
		},
		{
			Name:   "similarto",
			Params: "<word> <transpositions>",
			Help:   "Lists all words within the given letter transposition count of the given word",
			Detailed: "Lists all words a given number of character transpositions or less away from the given word.\n" +
				"A character transposition is the changing of one letter into another, without any adding or subtracting.",
			Run: func(s *Session, args []string) string {
				if len(args) == 0 {
					return "No supplied word!"
				}
				if len(args) < 2 {
					return "Invalid transposition count!"
				}
				distance, err := strconv.Atoi(args[1])
				if err != nil {
					return "Invalid transposition count!"
				}
				matches := s.board.Lexicon().SuggestCorrections(strings.ToLower(args[0]), distance)
				return listWords(matches)
			},
		},
		{
			Name:     "regex",
			Params:   "<regex>",
			Help:     "Searches the dictionary using a given regex pattern",
			Detailed: "Searches the dictionary using a given regex pattern.",
			Run: func(s *Session, args []string) string {
				if len(args) == 0 {
					return "Regex pattern required!"
				}
				return s.matchOrComplain(args[0])
			},
		},
		{
			Name:     "version",
			Params:   "",
			Help:     "Displays the version number of this program",
			Detailed: "Displays the version number of this program.",
			Run: func(s *Session, _ []string) string {
				return "Version: " + s.version
			},
		},

		// Debug commands, hidden from plain help.
		{
			Name:     "debug.help",
			Params:   "",
			Help:     "Displays ALL commands",
			Detailed: "Displays all commands, including ones not visible with the standard 'help' command.",
			Hidden:   true,
			Run: func(_ *Session, _ []string) string {
				lines := make([]string, len(commands))
				for i, c := range commands {
					lines[i] = c.helpLine()
				}
				return strings.Join(lines, "\n")
			},
		},
		{
			Name:     "debug.helpall",
			Params:   "",
			Help:     "Displays detailed information for ALL commands",
			Detailed: "Displays the detailed information for all commands.",
			Hidden:   true,
			Run: func(_ *Session, _ []string) string {
				var sb strings.Builder
				for _, c := range commands {
					fmt.Fprintf(&sb, "'%s'\n%s\n\n", c.Name, c.Detailed)
				}
				return sb.String()
			},
		},
		{
			Name:     "debug.addword",
			Params:   "<word1> (word2) ...",
			Help:     "Adds the given words into the dictionary",
			Detailed: "Adds the given words into the dictionary.",
			Hidden:   true,
			Run: func(s *Session, args []string) string {
				for _, w := range args {
					s.board.Lexicon().Add(strings.ToLower(w))
				}
				return "Words added successfully!"
			},
		},
		{
			Name:     "debug.remove",
			Params:   "<word1> (word2) ...",
			Help:     "Removes the given words from the dictionary",
			Detailed: "Removes the given words from the dictionary.",
			Hidden:   true,
			Run: func(s *Session, args []string) string {
				for _, w := range args {
					s.board.Lexicon().Remove(strings.ToLower(w))
				}
				return "Words removed successfully!"
			},
		},
		{
			Name:     "debug.addfile",
			Params:   "<file1> (file2) ...",
			Help:     "Adds words from the provided files into the dictionary",
			Detailed: "Adds words from the provided files into the dictionary.\nThe number of lines read will be displayed, along with any error that caused word adding to cease.",
			Hidden:   true,
			Run: func(s *Session, args []string) string {
				if len(args) == 0 {
					return "Error: No file name provided!"
				}
				linesRead := 0
				for _, path := range args {
					n, err := s.board.Lexicon().LoadFile(path)
					linesRead += n
					if err != nil {
						return fmt.Sprintf("An error occurred while trying to read %s. %d lines read successfully!", path, linesRead)
					}
				}
				return fmt.Sprintf("%d lines read successfully!", linesRead)
			},
		},
		{
			Name:     "debug.wordcount",
			Params:   "",
			Help:     "Displays the number of words in the dictionary",
			Detailed: "Displays the number of words in the dictionary.",
			Hidden:   true,
			Run: func(s *Session, _ []string) string {
				return fmt.Sprintf("Word Count: %d", s.board.Lexicon().Size())
			},
		},
		{
			Name:     "debug.wcinfo",
			Params:   "",
			Help:     "Displays the current stats for the Word Challenge",
			Detailed: "Displays the current stats for the Word Challenge.",
			Hidden:   true,
			Run: func(s *Session, _ []string) string {
				if !s.challenge.active {
					return "Not in a word challenge!"
				}
				required := s.challenge.required
				if required == "" {
					required = "None"
				}
				return fmt.Sprintf("Current Points: %s\nMax Points: %s\nRacks Left: %d\nRequired Letters: %s",
					board.FormatHearts(s.challenge.currentQh),
					board.FormatHearts(s.challenge.maxQh),
					s.challenge.racksLeft,
					required)
			},
		},
	}
}

func runHelp(_ *Session, args []string) string {
	if len(args) == 0 {
		var lines []string
		for _, c := range commands {
			if !c.Hidden {
				lines = append(lines, c.helpLine())
			}
		}
		return strings.Join(lines, "\n")
	}

	var sb strings.Builder
	found := make([]bool, len(args))
	for _, c := range commands {
		for i, arg := range args {
			if arg == c.Name {
				fmt.Fprintf(&sb, "'%s'\n%s\n\n", c.Name, c.Detailed)
				found[i] = true
			}
		}
	}
	var missing []string
	for i, ok := range found {
		if !ok {
			missing = append(missing, fmt.Sprintf("%q", args[i]))
		}
	}
	if len(missing) > 0 {
		sb.WriteString("\nThe following commands were not found: ")
		sb.WriteString(strings.Join(missing, ", "))
		sb.WriteString("\nPlease type \"help\" by itself for a list of accepted commands!")
	}
	return sb.String()
}

func runWordChallenge(s *Session, args []string) string {
	racks := s.racks
	rest := args
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			racks = n
			rest = args[1:]
		}
	}
	required := strings.Join(rest, "")

	s.challenge = challenge{
		active:    true,
		required:  required,
		racksLeft: racks,
	}
	s.board.Randomize(strings.ToUpper(required))
	s.boardReady = true
	return "Use the \"submit <word>\" command to submit your final words:\n" + s.board.String()
}

func runSubmit(s *Session, args []string) string {
	if !s.challenge.active {
		return "There is no word challenge currently active!"
	}
	if len(args) == 0 {
		return "Correct usage is \"submit <word>\". Please try again"
	}
	submitted := strings.ToLower(args[0])
	if !s.board.Lexicon().ContainsWord(submitted) {
		return submitted + " is not a valid word! Please try again"
	}

	best := s.board.BestWords()
	if len(best) > 0 {
		s.challenge.maxQh += s.board.AttackPower(best[0], board.DefaultModifiers()).BaseQuarterHearts
	}
	s.challenge.currentQh += s.board.AttackPower(submitted, board.DefaultModifiers()).BaseQuarterHearts

	var sb strings.Builder
	sb.WriteString(s.listBestWords(best))
	s.challenge.racksLeft--
	if s.challenge.racksLeft == 0 {
		s.challenge.active = false
		accuracy := 0.0
		if s.challenge.maxQh > 0 {
			accuracy = 100 * float64(s.challenge.currentQh) / float64(s.challenge.maxQh)
		}
		fmt.Fprintf(&sb, "Game over. Well done!\nFinal Score: %s out of %s points. Accuracy: %.1f%%",
			board.FormatHearts(s.challenge.currentQh),
			board.FormatHearts(s.challenge.maxQh),
			accuracy)
	} else {
		s.board.Randomize(strings.ToUpper(s.challenge.required))
		sb.WriteString(s.board.String())
	}
	return sb.String()
}

func runAttack(s *Session, args []string) string {
	if len(args) == 0 {
		return "No words supplied!"
	}

	// Default loadout mirrors a fully equipped trainer run.
	mods := board.Modifiers{BowLevel: 2, Hammer: true, Parrot: true, AttackBoost: 1698}
	var words []string
	for _, arg := range args {
		key, value, isSpec := strings.Cut(arg, "=")
		if !isSpec {
			words = append(words, arg)
			continue
		}
		switch key {
		case "bow":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 2 {
				mods.BowLevel = n
			} else if isOff(value) {
				mods.BowLevel = 0
			}
		case "hammer":
			mods.Hammer = !isOff(value)
		case "parrot":
			mods.Parrot = !isOff(value)
		case "powered", "pu":
			if n, err := strconv.Atoi(value); err == nil {
				mods.Powered = clampSign(n)
			}
		case "pd":
			if n, err := strconv.Atoi(value); err == nil {
				mods.Powered = -clampSign(n)
			}
		case "gem":
			if n, err := strconv.Atoi(value); err == nil {
				mods.GemBoost = n
			}
		case "attack":
			if n, err := strconv.Atoi(value); err == nil {
				mods.AttackBoost = n
			}
		case "armour", "armor":
			switch value {
			case "heavy":
				mods.ArmourLevel = 2
			case "light":
				mods.ArmourLevel = 1
			case "none":
				mods.ArmourLevel = 0
			default:
				if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 2 {
					mods.ArmourLevel = n
				}
			}
		default:
			words = append(words, arg)
		}
	}
	if len(words) == 0 {
		return "No words supplied!"
	}

	lines := make([]string, len(words))
	for i, word := range words {
		dmg := s.board.AttackPower(word, mods)
		line := fmt.Sprintf("%s - %sBH (%d Final Qh)", word, board.FormatHearts(dmg.BaseQuarterHearts), dmg.Final)
		if !s.board.Lexicon().ContainsWord(strings.ToLower(word)) {
			line += " *Note! This is NOT an accepted word*"
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func runBestWords(s *Session, args []string) string {
	if len(args) == 0 {
		if !s.boardReady {
			return "There is no board to find the best words in!"
		}
		return s.listBestWords(s.board.BestWords())
	}

	letters := strings.Join(args, "")
	rules := board.ClassicRuleset()
	rules.Width, rules.Height = len(letters), 1
	rack := board.New(rules, s.board.Lexicon(), nil)
	rack.Randomize(strings.ToUpper(letters))

	temp := &Session{board: rack, shown: s.shown}
	return temp.listBestWords(rack.BestWords())
}

// isOff interprets the falsy spellings accepted by attack specifiers.
func isOff(value string) bool {
	switch value {
	case "0", "false", "off", "no":
		return true
	}
	return false
}

func clampSign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
