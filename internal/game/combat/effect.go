package combat

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/frontier/internal/game/status"
	"github.com/cory-johannsen/frontier/internal/tagged"
)

// Effect is one declarative unit of intended state change carried by a card.
// The variant set is closed: only the types in this file implement it, and
// the Resolver type-switches over them.
type Effect interface {
	effect()
}

// Damage deals Amount damage to the target through the damage pipeline.
type Damage struct{ Amount int }

// Block gives the player Amount block.
type Block struct{ Amount int }

// Stress adds Amount stress to the target.
type Stress struct{ Amount int }

// SelfStress adds Amount stress to the player as a card's cost.
type SelfStress struct{ Amount int }

// ReduceStress lowers the player's stress by Amount.
type ReduceStress struct{ Amount int }

// Heal restores Amount HP to the player.
type Heal struct{ Amount int }

// DrawCards draws N more cards once the card resolves.
type DrawCards struct{ N int }

// GainEnergy grants N energy once the card resolves.
type GainEnergy struct{ N int }

// GainEnergyNextTurn grants N extra energy at the start of the next turn.
type GainEnergyNextTurn struct{ N int }

// ClearDebuffs removes every debuff from the player.
type ClearDebuffs struct{}

// EnemyStress unsettles the target by Amount stress.
type EnemyStress struct{ Amount int }

// DamageIfNoBlock deals Base, plus Bonus when the target has no block.
type DamageIfNoBlock struct {
	Base  int `yaml:"base"`
	Bonus int `yaml:"bonus"`
}

// DamageIfLowHp deals Base, plus Bonus when the player's HP is below
// ThresholdPercent of max.
type DamageIfLowHp struct {
	Base             int `yaml:"base"`
	Bonus            int `yaml:"bonus"`
	ThresholdPercent int `yaml:"threshold_percent"`
}

// DamageIfEnemyActed deals Base, plus Bonus when the enemy acted last turn.
type DamageIfEnemyActed struct {
	Base  int `yaml:"base"`
	Bonus int `yaml:"bonus"`
}

// DamageIfVulnerable deals Base, plus Bonus when the target is Vulnerable.
type DamageIfVulnerable struct {
	Base  int `yaml:"base"`
	Bonus int `yaml:"bonus"`
}

// ApplyStatus applies a status to the target, or to the player when TargetSelf is set.
type ApplyStatus struct {
	Type       status.Type `yaml:"effect_type"`
	Duration   int         `yaml:"duration"`
	Value      int         `yaml:"value"`
	TargetSelf bool        `yaml:"target_self"`
}

// StressResistance reduces stress the player receives this turn by Percent.
type StressResistance struct{ Percent int }

// DisableAttacks forbids playing attack cards for the rest of the turn.
type DisableAttacks struct{}

func (Damage) effect()             {}
func (Block) effect()              {}
func (Stress) effect()             {}
func (SelfStress) effect()         {}
func (ReduceStress) effect()       {}
func (Heal) effect()               {}
func (DrawCards) effect()          {}
func (GainEnergy) effect()         {}
func (GainEnergyNextTurn) effect() {}
func (ClearDebuffs) effect()       {}
func (EnemyStress) effect()        {}
func (DamageIfNoBlock) effect()    {}
func (DamageIfLowHp) effect()      {}
func (DamageIfEnemyActed) effect() {}
func (DamageIfVulnerable) effect() {}
func (ApplyStatus) effect()        {}
func (StressResistance) effect()   {}
func (DisableAttacks) effect()     {}

// IsDamage reports whether e deals damage.
func IsDamage(e Effect) bool {
	switch e.(type) {
	case Damage, DamageIfNoBlock, DamageIfLowHp, DamageIfEnemyActed, DamageIfVulnerable:
		return true
	}
	return false
}

// Effects is an ordered effect list decoded from the externally tagged content
// form, e.g. "- Damage: 6", "- ClearDebuffs", "- DamageIfNoBlock: {base: 4, bonus: 4}".
type Effects []Effect

var effectVariants = tagged.Registry[Effect]{
	"Damage":             tagged.Int(func(n int) Effect { return Damage{n} }),
	"Block":              tagged.Int(func(n int) Effect { return Block{n} }),
	"Stress":             tagged.Int(func(n int) Effect { return Stress{n} }),
	"SelfStress":         tagged.Int(func(n int) Effect { return SelfStress{n} }),
	"ReduceStress":       tagged.Int(func(n int) Effect { return ReduceStress{n} }),
	"Heal":               tagged.Int(func(n int) Effect { return Heal{n} }),
	"DrawCards":          tagged.Int(func(n int) Effect { return DrawCards{n} }),
	"GainEnergy":         tagged.Int(func(n int) Effect { return GainEnergy{n} }),
	"GainEnergyNextTurn": tagged.Int(func(n int) Effect { return GainEnergyNextTurn{n} }),
	"EnemyStress":        tagged.Int(func(n int) Effect { return EnemyStress{n} }),
	"StressResistance":   tagged.Int(func(n int) Effect { return StressResistance{n} }),
	"ClearDebuffs":       tagged.Unit[Effect](ClearDebuffs{}),
	"DisableAttacks":     tagged.Unit[Effect](DisableAttacks{}),
	"DamageIfNoBlock":    tagged.Fields[Effect, DamageIfNoBlock](),
	"DamageIfLowHp":      tagged.Fields[Effect, DamageIfLowHp](),
	"DamageIfEnemyActed": tagged.Fields[Effect, DamageIfEnemyActed](),
	"DamageIfVulnerable": tagged.Fields[Effect, DamageIfVulnerable](),
	"ApplyStatus":        tagged.Fields[Effect, ApplyStatus](),
}

// UnmarshalYAML decodes an externally tagged effect sequence.
func (es *Effects) UnmarshalYAML(node *yaml.Node) error {
	out, err := effectVariants.DecodeSeq(node)
	if err != nil {
		return fmt.Errorf("effects: %w", err)
	}
	*es = out
	return nil
}
