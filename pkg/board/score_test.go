package board

import (
	"testing"

	"github.com/calyptra/wordforge/pkg/lexicon"
	"github.com/stretchr/testify/assert"
)

func classicBoard(metalWords ...string) *Board {
	metal := lexicon.New()
	for _, w := range metalWords {
		metal.Add(w)
	}
	return New(ClassicRuleset(), lexicon.New(), metal)
}

func TestAttackPowerBareWord(t *testing.T) {
	b := classicBoard()

	// cat = 3+1+1 = 5 points -> 1 base quarter-heart; a quarter heart
	// floors to zero final damage without any equipment.
	dmg := b.AttackPower("cat", Modifiers{})
	assert.Equal(t, 1, dmg.BaseQuarterHearts)
	assert.Equal(t, 0, dmg.Final)
}

func TestAttackPowerParrotDoublesR(t *testing.T) {
	b := classicBoard()

	// rr = 4+4 = 8 points without the parrot, 16 with it.
	assert.Equal(t, 1, b.AttackPower("rr", Modifiers{}).BaseQuarterHearts)
	assert.Equal(t, 3, b.AttackPower("rr", Modifiers{Parrot: true}).BaseQuarterHearts)
}

func TestAttackPowerBowRaisesXYZ(t *testing.T) {
	b := classicBoard()

	// z = 10 table points; bow level 1 keeps 10, level 2 scores 12.
	assert.Equal(t, 1, b.AttackPower("z", Modifiers{}).BaseQuarterHearts)
	assert.Equal(t, 1, b.AttackPower("z", Modifiers{BowLevel: 1}).BaseQuarterHearts)
	assert.Equal(t, 2, b.AttackPower("z", Modifiers{BowLevel: 2}).BaseQuarterHearts)
}

func TestAttackPowerWildcardScoresOne(t *testing.T) {
	b := classicBoard()

	// ?? = 2 points, same as two one-point letters.
	assert.Equal(t, b.AttackPower("at", Modifiers{}).BaseQuarterHearts,
		b.AttackPower("??", Modifiers{}).BaseQuarterHearts)
}

func TestAttackPowerCapsAtMaximum(t *testing.T) {
	b := classicBoard()

	// Eight Qs = 80 points, past the end of the damage curve.
	dmg := b.AttackPower("qqqqqqqq", Modifiers{})
	assert.Equal(t, 52, dmg.BaseQuarterHearts)
}

func TestAttackPowerHammerAndMetal(t *testing.T) {
	b := classicBoard("iron")

	// iron = 1+4+1+1 = 7 points -> 1 base quarter-heart. The hammer grants
	// +4 final damage; the metal bonus multiplies the partial by 1.5.
	dmg := b.AttackPower("iron", Modifiers{Hammer: true})
	assert.Equal(t, 1, dmg.BaseQuarterHearts)
	assert.Equal(t, 4, dmg.Final)

	// A non-metal word still gets the flat hammer bonus only.
	dmg = b.AttackPower("cat", Modifiers{Hammer: true})
	assert.Equal(t, 4, dmg.Final)
}

func TestAttackPowerGemAndArmour(t *testing.T) {
	b := classicBoard()

	// Gem boost adds ceil(0.25 hearts * 100%) = 1 full heart of damage.
	dmg := b.AttackPower("cat", Modifiers{GemBoost: 100})
	assert.Equal(t, 1, dmg.Final)

	// Heavy armour subtracts 12; damage may go negative.
	dmg = b.AttackPower("cat", Modifiers{ArmourLevel: 2})
	assert.Equal(t, -12, dmg.Final)
}

func TestAttackPowerPowered(t *testing.T) {
	b := classicBoard()

	// qqqqqqqq caps at 52 quarter-hearts = 13 hearts.
	up := b.AttackPower("qqqqqqqq", Modifiers{Powered: 1})
	down := b.AttackPower("qqqqqqqq", Modifiers{Powered: -1})
	flat := b.AttackPower("qqqqqqqq", Modifiers{})
	assert.Equal(t, 16, up.Final)   // floor(13 * 1.25)
	assert.Equal(t, 8, down.Final)  // floor(13 * 0.66)
	assert.Equal(t, 13, flat.Final) // floor(13)
}

func TestFormatHearts(t *testing.T) {
	cases := map[int]string{
		0:  "0",
		1:  "0.25",
		2:  "0.5",
		3:  "0.75",
		4:  "1",
		9:  "2.25",
		52: "13",
	}
	for qh, want := range cases {
		assert.Equal(t, want, FormatHearts(qh), "qh=%d", qh)
	}
}
