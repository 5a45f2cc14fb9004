package board

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/calyptra/wordforge/pkg/lexicon"
)

// Board is one rack of tiles drawn under a Ruleset and scored against a
// lexicon. The metal lexicon marks words eligible for the hammer bonus and
// may be nil.
type Board struct {
	rules Ruleset
	tiles []string
	words *lexicon.Lexicon
	metal *lexicon.Lexicon
}

// New returns a board with empty tiles; call Randomize before use.
func New(rules Ruleset, words, metal *lexicon.Lexicon) *Board {
	return &Board{
		rules: rules,
		tiles: make([]string, rules.Width*rules.Height),
		words: words,
		metal: metal,
	}
}

// Width returns the board width in tiles.
func (b *Board) Width() int { return b.rules.Width }

// Height returns the board height in tiles.
func (b *Board) Height() int { return b.rules.Height }

// Lexicon returns the dictionary this board validates and scores against.
func (b *Board) Lexicon() *lexicon.Lexicon { return b.words }

// randomTile draws one tile label weighted by the table's probabilities.
func (b *Board) randomTile() string {
	total := 0
	for _, tile := range b.rules.Tiles {
		total += tile.Probability
	}
	if total <= 0 {
		return "?"
	}
	left := rand.IntN(total)
	for label, tile := range b.rules.Tiles {
		left -= tile.Probability
		if left < 0 {
			return label
		}
	}
	return "?"
}

// Randomize replaces the whole rack with fresh weighted draws, then scatters
// the required letters over distinct random cells. Surplus required letters
// beyond the rack size are ignored.
func (b *Board) Randomize(required string) {
	for i := range b.tiles {
		b.tiles[i] = b.randomTile()
	}
	cells := len(b.tiles)
	if cells == 0 {
		return
	}
	used := make([]bool, cells)
	upper := strings.ToUpper(required)
	n := min(cells, len(upper))
	for i := 0; i < n; i++ {
		loc := rand.IntN(cells)
		for used[loc] {
			loc = (loc + 1) % cells
		}
		used[loc] = true
		b.tiles[loc] = string(upper[i])
	}
}

// HasWord reports whether word can be played from the current rack. The
// check is caller-side game validation, not dictionary membership: letters
// must be A-Z, every Q must be followed by a U (a Q tile carries its own U),
// and "?" tiles stand in for any missing letters.
func (b *Board) HasWord(word string) bool {
	if word == "" {
		return false
	}
	upper := strings.ToUpper(word)
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if c < 'A' || c > 'Z' {
			return false
		}
		if c == 'Q' && (i == len(upper)-1 || upper[i+1] != 'U') {
			return false
		}
	}

	wilds := 0
	var counts [26]int
	for _, tile := range b.tiles {
		if tile == "" {
			continue
		}
		c := tile[0]
		if c == '?' {
			wilds++
			continue
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		if c == 'Q' {
			counts['U'-'A']++
		}
		counts[c-'A']++
	}

	needed := 0
	for i := 0; i < len(upper); i++ {
		counts[upper[i]-'A']--
		if counts[upper[i]-'A'] < 0 {
			needed++
		}
	}
	return wilds >= needed
}

// BestWords returns every stored word playable from the rack, strongest
// first by base quarter-hearts, ties broken alphabetically.
func (b *Board) BestWords() []string {
	type scored struct {
		word string
		qh   int
	}
	var playable []scored
	for word := range b.words.Words() {
		if b.HasWord(word) {
			dmg := b.AttackPower(word, DefaultModifiers())
			playable = append(playable, scored{word, dmg.BaseQuarterHearts})
		}
	}
	// Iteration is already alphabetical, so a stable sort keeps ties ordered.
	sort.SliceStable(playable, func(i, j int) bool {
		return playable[i].qh > playable[j].qh
	})
	out := make([]string, len(playable))
	for i, s := range playable {
		out[i] = s.word
	}
	return out
}

// String renders the rack as a grid, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for h := 0; h < b.rules.Height; h++ {
		if h > 0 {
			sb.WriteByte('\n')
		}
		for w := 0; w < b.rules.Width; w++ {
			if w > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.tiles[b.rules.Width*h+w])
		}
	}
	return sb.String()
}
