package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/frontier/internal/game/combat"
	"github.com/cory-johannsen/frontier/internal/game/status"
)

func TestUnit_TakeDamage_BlockAbsorbsFirst(t *testing.T) {
	u := combat.NewEnemy("Beast", 30, 5)
	u.AddBlock(4)
	lost := u.TakeDamage(6)
	assert.Equal(t, 2, lost)
	assert.Equal(t, 0, u.Block)
	assert.Equal(t, 28, u.HP)
}

func TestUnit_TakeDamage_VulnerableTruncates(t *testing.T) {
	u := combat.NewEnemy("Beast", 30, 5)
	u.AddStatus(status.Effect{Type: status.Vulnerable, Duration: 2, Value: 1})
	assert.Equal(t, 10, u.TakeDamage(7)) // 7 * 1.5 = 10.5
}

func TestUnit_StressClamps(t *testing.T) {
	u := combat.NewPlayer("Elena", 35, 35, 95)
	u.AddStress(20)
	assert.Equal(t, combat.MaxStress, u.Stress)
	u.ReduceStress(500)
	assert.Equal(t, 0, u.Stress)
}

func TestUnit_HealClampsToMax(t *testing.T) {
	u := combat.NewPlayer("Marcus", 40, 45, 0)
	u.Heal(100)
	assert.Equal(t, 45, u.HP)
}

func TestUnit_TickStatuses_RegenAndPoison(t *testing.T) {
	u := combat.NewPlayer("Marcus", 30, 45, 0)
	u.AddStatus(status.Effect{Type: status.Regen, Duration: 1, Value: 5})
	u.AddStatus(status.Effect{Type: status.Poison, Duration: 3, Value: 2})
	u.TickStatuses()
	assert.Equal(t, 33, u.HP)
	assert.False(t, u.HasStatus(status.Regen))
	assert.True(t, u.HasStatus(status.Poison))
}

func TestUnit_RollIntent_Cycle(t *testing.T) {
	u := combat.NewEnemy("Beast", 30, 5)
	want := []combat.Intent{
		{Kind: combat.IntentAttack, Value: 5},
		{Kind: combat.IntentAttack, Value: 7},
		{Kind: combat.IntentBlock, Value: 5},
		{Kind: combat.IntentAttack, Value: 5},
	}
	for turn := 0; turn < 8; turn++ {
		u.RollIntent(turn)
		assert.Equal(t, want[turn%4], u.Intent, "turn %d", turn)
	}
}

func TestUnit_Stun_SuppressesIntent(t *testing.T) {
	u := combat.NewEnemy("Beast", 30, 5)
	u.RollIntent(0)
	u.AddStatus(status.Effect{Type: status.Stun, Duration: 1, Value: 1})
	dmg, stress := u.ExecuteIntent()
	assert.Zero(t, dmg)
	assert.Zero(t, stress)
	u.RollIntent(1)
	assert.Equal(t, combat.IntentUnknown, u.Intent.Kind)
	assert.False(t, u.WillAct())
}

func TestUnit_ExecuteIntent_Variants(t *testing.T) {
	u := combat.NewEnemy("Beast", 30, 5)

	u.Intent = combat.Intent{Kind: combat.IntentBlock, Value: 5}
	dmg, stress := u.ExecuteIntent()
	assert.Equal(t, [2]int{0, 0}, [2]int{dmg, stress})
	assert.Equal(t, 5, u.Block)

	u.Intent = combat.Intent{Kind: combat.IntentBuff}
	u.ExecuteIntent()
	assert.Equal(t, 7, u.BaseDamage)

	u.Intent = combat.Intent{Kind: combat.IntentDebuff, Value: 8}
	dmg, stress = u.ExecuteIntent()
	assert.Equal(t, [2]int{0, 8}, [2]int{dmg, stress})

	u.Intent = combat.Intent{Kind: combat.IntentAttack, Value: 9}
	dmg, _ = u.ExecuteIntent()
	assert.Equal(t, 9, dmg)
}

// Property: block and hp follow block-first absorption after the Vulnerable multiplier.
func TestPropertyTakeDamage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hp := rapid.IntRange(1, 200).Draw(t, "hp")
		b := rapid.IntRange(0, 50).Draw(t, "block")
		n := rapid.IntRange(0, 100).Draw(t, "n")
		vuln := rapid.Bool().Draw(t, "vulnerable")

		u := combat.NewEnemy("Target", hp, 0)
		u.Block = b
		if vuln {
			u.AddStatus(status.Effect{Type: status.Vulnerable, Duration: 1, Value: 1})
		}
		eff := n
		if vuln {
			eff = int(float64(n) * 1.5)
		}
		lost := u.TakeDamage(n)

		if u.Block != max(0, b-eff) {
			t.Fatalf("block=%d want %d", u.Block, max(0, b-eff))
		}
		if u.HP != hp-max(0, eff-b) {
			t.Fatalf("hp=%d want %d", u.HP, hp-max(0, eff-b))
		}
		if lost != max(0, eff-b) {
			t.Fatalf("lost=%d want %d", lost, max(0, eff-b))
		}
	})
}

// Property: RollIntent depends only on turn%4 and Stun.
func TestPropertyRollIntentPure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.IntRange(0, 20).Draw(t, "base")
		turn := rapid.IntRange(0, 1000).Draw(t, "turn")
		stunned := rapid.Bool().Draw(t, "stunned")
		a := combat.NewEnemy("A", 10, base)
		b := combat.NewEnemy("B", 10, base)
		if stunned {
			a.AddStatus(status.Effect{Type: status.Stun, Duration: 1, Value: 1})
			b.AddStatus(status.Effect{Type: status.Stun, Duration: 1, Value: 1})
		}
		a.RollIntent(turn)
		first := a.Intent
		a.RollIntent(turn)
		b.RollIntent(turn % 4)
		if a.Intent != first || b.Intent != first {
			t.Fatalf("intent not pure: %v %v %v", first, a.Intent, b.Intent)
		}
	})
}
