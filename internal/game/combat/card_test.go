package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/frontier/internal/game/combat"
	"github.com/cory-johannsen/frontier/internal/game/status"
)

const cardYAML = `
id: shield_bash
name: Shield Bash
cost: 2
description: Block, then strike harder if they left themselves open
class: Soldier
effects:
  - Block: 4
  - DamageIfNoBlock: {base: 4, bonus: 4}
  - ApplyStatus: {effect_type: Vulnerable, duration: 2, value: 1, target_self: false}
  - ClearDebuffs
  - DisableAttacks
`

func TestCard_DecodeExternallyTaggedEffects(t *testing.T) {
	var c combat.Card
	require.NoError(t, yaml.Unmarshal([]byte(cardYAML), &c))
	assert.Equal(t, combat.ClassSoldier, c.Class)
	assert.Equal(t, combat.Effects{
		combat.Block{Amount: 4},
		combat.DamageIfNoBlock{Base: 4, Bonus: 4},
		combat.ApplyStatus{Type: status.Vulnerable, Duration: 2, Value: 1},
		combat.ClearDebuffs{},
		combat.DisableAttacks{},
	}, c.Effects)
	assert.True(t, c.IsAttack())
}

func TestCard_DecodeJSON(t *testing.T) {
	src := `{"id":"focus","name":"Focus","cost":0,"description":"","effects":[{"GainEnergyNextTurn":2},{"StressResistance":30},"ClearDebuffs"]}`
	var c combat.Card
	require.NoError(t, yaml.Unmarshal([]byte(src), &c))
	assert.Equal(t, combat.Effects{
		combat.GainEnergyNextTurn{N: 2},
		combat.StressResistance{Percent: 30},
		combat.ClearDebuffs{},
	}, c.Effects)
	assert.False(t, c.IsAttack())
}

func TestCard_DecodeRejectsUnknownEffect(t *testing.T) {
	var c combat.Card
	err := yaml.Unmarshal([]byte("id: x\neffects:\n  - Teleport: 3\n"), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Teleport")
}

func TestCard_DecodeRejectsMalformedAmount(t *testing.T) {
	var c combat.Card
	assert.Error(t, yaml.Unmarshal([]byte("id: x\neffects:\n  - Damage: lots\n"), &c))
	assert.Error(t, yaml.Unmarshal([]byte("id: x\neffects:\n  - DamageIfNoBlock: 4\n"), &c))
}

func TestCard_UsableBy(t *testing.T) {
	assert.True(t, combat.Card{}.UsableBy(combat.ClassScout))
	assert.True(t, combat.Card{Class: combat.ClassAny}.UsableBy(combat.ClassHealer))
	assert.False(t, combat.Card{Class: combat.ClassMystic}.UsableBy(combat.ClassHealer))
}

func TestStarterCards(t *testing.T) {
	cards := combat.StarterCards()
	require.Len(t, cards, 5)
	assert.Equal(t, "strike", cards[0].ID)
	assert.True(t, cards[2].IsAttack())
	assert.False(t, cards[3].IsAttack())
}

func TestCard_Validate(t *testing.T) {
	for _, c := range combat.StarterCards() {
		assert.NoError(t, c.Validate())
	}
	assert.Error(t, combat.Card{Cost: 1, Effects: combat.Effects{combat.Damage{Amount: 1}}}.Validate())
	assert.Error(t, combat.Card{ID: "x", Cost: -1, Effects: combat.Effects{combat.Damage{Amount: 1}}}.Validate())
	assert.Error(t, combat.Card{ID: "x"}.Validate())
	assert.Error(t, combat.Card{ID: "x", Class: "Bard", Effects: combat.Effects{combat.Block{Amount: 1}}}.Validate())
}

func TestCard_ValidateRejectsTimelessStatus(t *testing.T) {
	c := combat.Card{ID: "hex", Cost: 1, Effects: combat.Effects{
		combat.Damage{Amount: 2},
		combat.ApplyStatus{Type: status.Weak, Duration: 0, Value: 1},
	}}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")

	c.Effects[1] = combat.ApplyStatus{Type: status.Weak, Duration: 1, Value: 1}
	assert.NoError(t, c.Validate())
}
