// Package combat implements card-driven combat: units, the closed card-effect
// set, the effect resolver with its turn-scoped modifiers, enemy intent, and
// the encounter loop that sequences player and enemy turns.
package combat

import (
	"github.com/cory-johannsen/frontier/internal/game/status"
)

// MaxStress is the ceiling for a unit's stress.
const MaxStress = 100

// Unit is one combat participant, built fresh for each encounter.
//
// Invariant: Block >= 0; 0 <= Stress <= MaxStress.
type Unit struct {
	Name       string
	HP         int
	MaxHP      int
	Block      int
	Stress     int
	IsPlayer   bool
	ImagePath  string
	BaseDamage int
	Intent     Intent
	Statuses   status.List
}

// NewPlayer builds a player unit carrying an adventurer's current hp and stress.
func NewPlayer(name string, hp, maxHP, stress int) *Unit {
	return &Unit{Name: name, HP: hp, MaxHP: maxHP, Stress: clampStress(stress), IsPlayer: true}
}

// NewEnemy builds an enemy unit at full health.
func NewEnemy(name string, maxHP, baseDamage int) *Unit {
	return &Unit{Name: name, HP: maxHP, MaxHP: maxHP, BaseDamage: baseDamage}
}

// IsDead reports whether the unit has no hit points left.
func (u *Unit) IsDead() bool { return u.HP <= 0 }

// TakeDamage applies the Vulnerable multiplier (x1.5, truncating), lets block
// absorb what it can, and removes the remainder from HP.
//
// Postcondition: Block >= 0; the return value is the HP actually lost.
func (u *Unit) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if u.Statuses.Has(status.Vulnerable) {
		amount = amount * 3 / 2
	}
	absorbed := min(amount, u.Block)
	u.Block -= absorbed
	lost := amount - absorbed
	u.HP -= lost
	return lost
}

// AddBlock raises block; block never drops below zero.
func (u *Unit) AddBlock(amount int) {
	u.Block = max(0, u.Block+amount)
}

// ResetBlock clears all block at a turn boundary.
func (u *Unit) ResetBlock() { u.Block = 0 }

// AddStress raises stress, capped at MaxStress.
func (u *Unit) AddStress(amount int) {
	u.Stress = clampStress(u.Stress + amount)
}

// ReduceStress lowers stress, flooring at zero.
func (u *Unit) ReduceStress(amount int) {
	u.Stress = clampStress(u.Stress - amount)
}

// Heal restores HP up to MaxHP.
func (u *Unit) Heal(amount int) {
	u.HP = min(u.MaxHP, u.HP+amount)
}

// AddStatus applies e under the refresh rule.
func (u *Unit) AddStatus(e status.Effect) { u.Statuses.Add(e) }

// HasStatus reports whether a status of type t is active.
func (u *Unit) HasStatus(t status.Type) bool { return u.Statuses.Has(t) }

// TickStatuses runs one status tick: Poison and Burn hit HP directly,
// durations decay, and the summed Regen heals up to MaxHP.
//
// Precondition: called once per unit per turn boundary, before ResetBlock.
func (u *Unit) TickStatuses() status.TickResult {
	res := u.Statuses.Tick()
	u.HP -= res.Damage
	if res.Heal > 0 {
		u.Heal(res.Heal)
	}
	return res
}

func clampStress(s int) int {
	return min(MaxStress, max(0, s))
}
