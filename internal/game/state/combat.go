package state

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/game/combat"
	"github.com/cory-johannsen/frontier/internal/game/kingdom"
)

// CombatState runs one encounter. The interrupted mission travels with it
// and receives the party's condition back when the fight ends.
type CombatState struct {
	Encounter *combat.Encounter
	Return    *MissionState
	Notice    string
}

// NewCombatState seats every living party member in the encounter, in party order.
//
// Precondition: at least one member of m is alive.
func NewCombatState(env *Env, m *MissionState, foe *combat.Unit) *CombatState {
	members := make([]combat.Member, 0, len(m.Members))
	for _, p := range m.Members {
		if !p.IsAlive() {
			continue
		}
		u := combat.NewPlayer(p.Name, p.HP, p.MaxHP, p.Stress)
		u.ImagePath = p.ImagePath
		members = append(members, combat.Member{ID: p.ID, Class: combat.Class(p.Class), Unit: u, Extra: p.DeckAdditions})
	}
	enc := combat.NewEncounter(members, foe, env.Content.Cards(), env.Rules.Combat, env.Src, env.Logger.Named("combat"))
	return &CombatState{Encounter: enc, Return: m}
}

func (s *CombatState) Kind() Kind { return KindCombat }

// Update plays the hand card at Input.Index on Select and runs the enemy
// phase on EndTurn.
func (s *CombatState) Update(env *Env, in Input) Transition {
	var err error
	switch in.Action {
	case ActionSelect:
		err = s.Encounter.PlayCard(in.Index)
	case ActionEndTurn:
		err = s.Encounter.EndTurn()
	default:
		return nil
	}
	switch {
	case errors.Is(err, combat.ErrInsufficientEnergy), errors.Is(err, combat.ErrAttacksDisabled), errors.Is(err, combat.ErrNoSuchCard):
		s.Notice = err.Error()
		return nil
	case err != nil:
		env.Logger.Warn("combat input rejected", zap.Error(err))
		return nil
	}
	s.Notice = ""
	return s.settle(env)
}

func (s *CombatState) settle(env *Env) Transition {
	enc := s.Encounter
	switch enc.Outcome() {
	case combat.Victory:
		s.writeBack()
		s.Return.Kills[enc.Active().ID]++
		s.Return.logf("%s is defeated.", enc.Enemy.Name)
		env.Logger.Info("combat won",
			zap.String("enemy", enc.Enemy.Name),
			zap.Int("turns", enc.Turn+1),
		)
		return ToMission{State: s.Return}
	case combat.Defeat:
		s.writeBack()
		env.Logger.Info("combat lost", zap.String("enemy", enc.Enemy.Name))
		return ToResults{State: NewResultsState(env, kingdom.Defeat, s.Return)}
	}
	return nil
}

// writeBack copies each fighter's HP and stress onto its party snapshot by id.
func (s *CombatState) writeBack() {
	for _, m := range s.Encounter.Members {
		p, ok := s.Return.member(m.ID)
		if !ok {
			continue
		}
		p.HP = max(m.Unit.HP, 0)
		p.Stress = m.Unit.Stress
	}
}

func (s *CombatState) Draw(_ *Env, r Renderer) {
	enc := s.Encounter
	r.Title(fmt.Sprintf("Combat, turn %d", enc.Turn+1))
	r.Meter(enc.Enemy.Name, enc.Enemy.HP, enc.Enemy.MaxHP)
	r.Line(fmt.Sprintf("  block %d, intends %s", enc.Enemy.Block, enc.Enemy.Intent))
	if enc.Outcome() == combat.Ongoing {
		p := enc.Active().Unit
		r.Meter(p.Name, p.HP, p.MaxHP)
		r.Line(fmt.Sprintf("  block %d, stress %d, energy %d", p.Block, p.Stress, enc.Energy))
		for i, c := range enc.Hand() {
			r.Option(i, fmt.Sprintf("%s (%d): %s", c.Name, c.Cost, c.Description), false)
		}
		draw, discard := enc.PileSizes()
		r.Line(fmt.Sprintf("Draw %d  Discard %d", draw, discard))
	}
	log := enc.Resolver.Log
	for _, line := range log[max(len(log)-3, 0):] {
		r.Line(line)
	}
	if s.Notice != "" {
		r.Line(s.Notice)
	}
}
