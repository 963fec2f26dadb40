package state

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/game/combat"
	"github.com/cory-johannsen/frontier/internal/game/enemy"
	"github.com/cory-johannsen/frontier/internal/game/kingdom"
	"github.com/cory-johannsen/frontier/internal/game/mission"
)

// RevealHaulKnowledge is the knowledge added to the haul when an event reveals a trait.
const RevealHaulKnowledge = 5

// EventState presents a narrative event. The chosen outcomes apply in order
// to the interrupted mission, which then resumes or hands off to a fight.
type EventState struct {
	Event    mission.Event
	Return   *MissionState
	Selected int
}

func (s *EventState) Kind() Kind { return KindEvent }

// Update highlights a choice with Up/Down or Select and applies it on Confirm.
func (s *EventState) Update(env *Env, in Input) Transition {
	n := len(s.Event.Choices)
	switch in.Action {
	case ActionUp:
		s.Selected = wrap(s.Selected-1, n)
	case ActionDown:
		s.Selected = wrap(s.Selected+1, n)
	case ActionSelect:
		if in.Index >= 0 && in.Index < n {
			s.Selected = in.Index
		}
	case ActionConfirm:
		if n == 0 {
			return ToMission{State: s.Return}
		}
		return s.choose(env, s.Event.Choices[s.Selected])
	}
	return nil
}

func (s *EventState) choose(env *Env, c mission.Choice) Transition {
	m := s.Return
	var foe *combat.Unit
	for _, o := range c.Outcomes {
		switch o := o.(type) {
		case mission.StressOutcome:
			m.eachLiving(func(p *kingdom.PartyMemberState) { p.Adjust(0, o.Amount) })
		case mission.HealOutcome:
			m.eachLiving(func(p *kingdom.PartyMemberState) { p.Adjust(o.Amount, 0) })
		case mission.SuppliesOutcome:
			m.Haul.Supplies += o.Amount
		case mission.KnowledgeOutcome:
			m.Haul.Knowledge += o.Amount
		case mission.CombatOutcome:
			if t, ok := enemy.ByID(env.Content.Enemies(), o.EnemyID); ok {
				foe = t.ToUnit()
			} else {
				foe = enemy.ForDifficulty(env.Content.Enemies(), m.Mission.CombatDifficulty(), env.Src)
			}
		case mission.RevealTraitOutcome:
			m.Haul.Knowledge += RevealHaulKnowledge
			if r, ok := env.Region(m.Mission.RegionID); ok {
				if trait, ok := r.RevealTrait(); ok {
					m.logf("Revealed: %s.", trait)
				}
			}
		case mission.SkipNodeOutcome:
			m.skipNext = true
		case mission.NothingOutcome:
		}
	}
	env.Logger.Debug("event resolved",
		zap.String("event", s.Event.ID),
		zap.Int("choice", s.Selected),
	)
	m.logf("%s: %s", s.Event.Title, c.Text)

	if !kingdom.AnyAlive(m.Members) {
		return ToResults{State: NewResultsState(env, kingdom.Defeat, m)}
	}
	if foe != nil {
		return ToCombat{State: NewCombatState(env, m, foe)}
	}
	return ToMission{State: m}
}

func (s *EventState) Draw(_ *Env, r Renderer) {
	r.Title(s.Event.Title)
	r.Line(s.Event.Description)
	for i, c := range s.Event.Choices {
		r.Option(i, c.Text, i == s.Selected)
	}
	for _, m := range s.Return.Members {
		r.Meter(m.Name, m.HP, m.MaxHP)
	}
}

func (s *MissionState) eachLiving(fn func(p *kingdom.PartyMemberState)) {
	for i := range s.Members {
		if s.Members[i].IsAlive() {
			fn(&s.Members[i])
		}
	}
}
