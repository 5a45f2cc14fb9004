package board

import (
	"math"
	"strconv"
	"strings"
)

// Modifiers captures the equipment and status effects that shape a word's
// damage. The zero value means no equipment and no boosts.
type Modifiers struct {
	// BowLevel raises X, Y and Z tiles: 1 scores them at 10 points,
	// 2 at 12. At 0 the tile table value applies.
	BowLevel int
	// Hammer grants +4 final damage and a 1.5x bonus on metal words.
	Hammer bool
	// Parrot doubles R tiles from 4 to 8 points.
	Parrot bool
	// GemBoost is a percentage bonus on base hearts, rounded up.
	GemBoost int
	// AttackBoost is in tenths of a percent: 1633 means 163.3%.
	AttackBoost int
	// Powered is 1 when powered up (1.25x), -1 when powered down (0.66x).
	Powered int
	// ArmourLevel subtracts 6 final damage per level (0 none, 1 light,
	// 2 heavy).
	ArmourLevel int
}

// DefaultModifiers is the loadout assumed by BestWords and the challenge:
// best bow, hammer and parrot equipped, no boosts.
func DefaultModifiers() Modifiers {
	return Modifiers{BowLevel: 2, Hammer: true, Parrot: true}
}

// Damage is the scored result for one word. BaseQuarterHearts is the
// unmodified strength used for ranking; Final folds in every modifier.
type Damage struct {
	BaseQuarterHearts int
	Final             int
}

// damageCurve maps letter points (in steps of four) to base quarter-hearts;
// 58 points and beyond cap at 52.
var damageCurve = [...]int{1, 1, 1, 2, 3, 4, 6, 8, 11, 14, 18, 22, 27, 32, 38, 44, 52}

// AttackPower scores word under the given modifiers. Unknown characters
// contribute nothing; "?" always scores a single point. The word does not
// have to be rack-playable or even a dictionary word.
func (b *Board) AttackPower(word string, m Modifiers) Damage {
	upper := strings.ToUpper(word)

	points := 0
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		switch {
		case c == '?':
			points++
		case c == 'R' && m.Parrot:
			points += 8
		case (c == 'X' || c == 'Y' || c == 'Z') && m.BowLevel == 1:
			points += 10
		case (c == 'X' || c == 'Y' || c == 'Z') && m.BowLevel == 2:
			points += 12
		default:
			if tile, ok := b.rules.Tiles[string(c)]; ok {
				points += tile.Damage
			}
		}
	}

	baseQh := 52
	if points < 58 {
		baseQh = damageCurve[points/4]
	}

	hearts := float64(baseQh) / 4
	partial := hearts*(1+float64(m.AttackBoost)/1000) + math.Ceil(hearts*float64(m.GemBoost)/100)

	mult := 1.0
	switch {
	case m.Powered > 0:
		mult = 1.25
	case m.Powered < 0:
		mult = 0.66
	}
	if m.Hammer && b.metal != nil && b.metal.ContainsWord(strings.ToLower(word)) {
		mult *= 1.5
		// Bumping the base signals metal words when ranking.
		baseQh = baseQh * 3 / 2
	}

	final := int(math.Floor(mult*partial)) - 6*m.ArmourLevel
	if m.Hammer {
		final += 4
	}
	return Damage{BaseQuarterHearts: baseQh, Final: final}
}

// FormatHearts renders quarter-hearts as a decimal heart count, e.g. 9 -> "2.25".
func FormatHearts(qh int) string {
	whole := strconv.Itoa(qh / 4)
	switch qh % 4 {
	case 1:
		return whole + ".25"
	case 2:
		return whole + ".5"
	case 3:
		return whole + ".75"
	}
	return whole
}
