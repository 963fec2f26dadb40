package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/game/status"
)

// TurnModifiers is combat state scoped to the current turn.
//
// StressResistance and AttacksDisabled accumulate during a turn and reset at
// EndTurn. EnemyActedLastTurn is written at EndTurn and read during the next
// turn. The draw and energy accumulators are drained by the encounter loop.
type TurnModifiers struct {
	StressResistance   int
	AttacksDisabled    bool
	EnemyActedLastTurn bool
	EnergyNextTurn     int
	CardsToDraw        int
	EnergyToGain       int
}

// Resolver interprets card effects against a (player, target) pair and keeps
// a human-readable log of what happened.
type Resolver struct {
	Log  []string
	Mods TurnModifiers
	// DamageDealt totals HP removed from targets by resolved effects.
	DamageDealt int

	logger *zap.Logger
}

// NewResolver creates a Resolver with reset turn modifiers.
//
// Precondition: logger must be non-nil.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger}
}

func (r *Resolver) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.Log = append(r.Log, line)
	r.logger.Debug("effect resolved", zap.String("entry", line))
}

// Resolve applies exactly one effect. Damage variants run the pipeline:
// base or conditional amount, plus the player's Strength, times 0.75 if the
// player is Weak (truncating), then the target's TakeDamage, which applies
// Vulnerable once and lets block absorb first.
//
// Precondition: the caller has already checked energy and attack locks.
// Postcondition: one log entry per effect.
func (r *Resolver) Resolve(e Effect, player, target *Unit) {
	switch e := e.(type) {
	case Damage:
		r.damage(e.Amount, player, target)
	case DamageIfNoBlock:
		amt := e.Base
		if target.Block == 0 {
			amt += e.Bonus
		}
		r.damage(amt, player, target)
	case DamageIfLowHp:
		amt := e.Base
		if player.HP < player.MaxHP*e.ThresholdPercent/100 {
			amt += e.Bonus
		}
		r.damage(amt, player, target)
	case DamageIfEnemyActed:
		amt := e.Base
		if r.Mods.EnemyActedLastTurn {
			amt += e.Bonus
		}
		r.damage(amt, player, target)
	case DamageIfVulnerable:
		amt := e.Base
		if target.HasStatus(status.Vulnerable) {
			amt += e.Bonus
		}
		r.damage(amt, player, target)
	case Block:
		player.AddBlock(e.Amount)
		r.logf("%s gains %d block", player.Name, e.Amount)
	case Stress:
		target.AddStress(e.Amount)
		r.logf("%s gains %d stress", target.Name, e.Amount)
	case EnemyStress:
		target.AddStress(e.Amount)
		r.logf("%s is unnerved (+%d stress)", target.Name, e.Amount)
	case SelfStress:
		player.AddStress(e.Amount)
		r.logf("%s gains %d stress (self)", player.Name, e.Amount)
	case ReduceStress:
		player.ReduceStress(e.Amount)
		r.logf("%s reduces stress by %d", player.Name, e.Amount)
	case Heal:
		player.Heal(e.Amount)
		r.logf("%s heals %d", player.Name, e.Amount)
	case ClearDebuffs:
		n := player.Statuses.ClearDebuffs()
		r.logf("%s clears %d debuffs", player.Name, n)
	case ApplyStatus:
		who := target
		if e.TargetSelf {
			who = player
		}
		who.AddStatus(status.Effect{Type: e.Type, Duration: e.Duration, Value: e.Value})
		r.logf("%s gains %s for %d turns", who.Name, e.Type, e.Duration)
	case StressResistance:
		r.Mods.StressResistance = max(r.Mods.StressResistance, e.Percent)
		r.logf("%s resists %d%% stress this turn", player.Name, r.Mods.StressResistance)
	case DisableAttacks:
		r.Mods.AttacksDisabled = true
		r.logf("%s cannot attack this turn", player.Name)
	case DrawCards:
		r.Mods.CardsToDraw += e.N
		r.logf("%s will draw %d cards", player.Name, e.N)
	case GainEnergy:
		r.Mods.EnergyToGain += e.N
		r.logf("%s gains %d energy", player.Name, e.N)
	case GainEnergyNextTurn:
		r.Mods.EnergyNextTurn += e.N
		r.logf("%s will gain %d energy next turn", player.Name, e.N)
	}
}

func (r *Resolver) damage(base int, player, target *Unit) {
	lost := target.TakeDamage(AttackDamage(base, player))
	r.DamageDealt += lost
	r.logf("%s takes %d damage", target.Name, lost)
}

// AttackDamage is the attacker's side of the damage pipeline: base plus
// Strength, then x0.75 (truncating) if the attacker is Weak. The defender's
// Vulnerable and block are left to TakeDamage.
//
// Postcondition: the result is >= 0.
func AttackDamage(base int, attacker *Unit) int {
	dmg := max(0, base+attacker.Statuses.Value(status.Strength))
	if attacker.HasStatus(status.Weak) {
		dmg = dmg * 3 / 4
	}
	return dmg
}

// IncomingStress reduces stress the player is about to receive by the
// current stress resistance percentage, truncating.
func (r *Resolver) IncomingStress(amount int) int {
	if amount <= 0 || r.Mods.StressResistance <= 0 {
		return amount
	}
	pct := min(100, r.Mods.StressResistance)
	return amount * (100 - pct) / 100
}

// DrainImmediate returns and clears the draw and energy accumulators that
// take effect as soon as the current card finishes resolving.
func (r *Resolver) DrainImmediate() (draw, energy int) {
	draw, energy = r.Mods.CardsToDraw, r.Mods.EnergyToGain
	r.Mods.CardsToDraw, r.Mods.EnergyToGain = 0, 0
	return draw, energy
}

// EndTurn closes the turn: stress resistance, the attack lock and all
// accumulators reset, and enemyActed is carried into the next turn.
// It returns the deferred energy owed at the start of that turn.
//
// Postcondition: Mods.EnemyActedLastTurn == enemyActed; every other field is zero.
func (r *Resolver) EndTurn(enemyActed bool) (energyNextTurn int) {
	energyNextTurn = r.Mods.EnergyNextTurn
	r.Mods = TurnModifiers{EnemyActedLastTurn: enemyActed}
	return energyNextTurn
}
