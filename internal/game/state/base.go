package state

import (
	"fmt"

	"github.com/cory-johannsen/frontier/internal/game/kingdom"
)

// BaseState is the kingdom hub: buildings, healing, the tavern and the way
// out to missions or the guild hall.
type BaseState struct {
	Notice string
	Cursor int
}

func (s *BaseState) Kind() Kind { return KindBase }

// Update handles base actions. Roster actions take the roster index in Input.Index.
func (s *BaseState) Update(env *Env, in Input) Transition {
	switch in.Action {
	case ActionUp:
		s.Cursor = wrap(s.Cursor-1, env.Roster.Len())
	case ActionDown:
		s.Cursor = wrap(s.Cursor+1, env.Roster.Len())
	case ActionMissions:
		return ToMissionSelect{State: NewMissionSelectState(env)}
	case ActionRecruit:
		if !env.Kingdom.HasBuilt(kingdom.GuildHall) {
			s.Notice = "The guild hall must be built before recruiting."
			return nil
		}
		return ToRecruit{State: NewRecruitState(env)}
	case ActionBuild:
		if err := env.Kingdom.Construct(in.Target); err != nil {
			s.Notice = fmt.Sprintf("Cannot build %s: %v", in.Target, err)
			return nil
		}
		b, _ := env.Kingdom.Building(in.Target)
		s.Notice = fmt.Sprintf("%s constructed.", b.Name)
	case ActionHeal, ActionTavern:
		a, ok := rosterAt(env.Roster, in.Index)
		if !ok {
			s.Notice = "No such adventurer."
			return nil
		}
		var err error
		if in.Action == ActionHeal {
			err = env.Kingdom.Treat(a)
		} else {
			err = env.Kingdom.Tavern(a)
		}
		if err != nil {
			s.Notice = err.Error()
			return nil
		}
		s.Notice = fmt.Sprintf("%s rests: %d/%d HP, %d stress.", a.Name, a.HP, a.MaxHP, a.Stress)
	case ActionRestDay:
		env.Kingdom.Day++
		env.Roster.RestDay()
		s.Notice = fmt.Sprintf("Day %d begins.", env.Kingdom.Day)
	}
	return nil
}

func (s *BaseState) Draw(env *Env, r Renderer) {
	k := env.Kingdom
	r.Title(fmt.Sprintf("The Kingdom, day %d", k.Day))
	r.Line(fmt.Sprintf("Gold %d  Supplies %d  Knowledge %d  Influence %d  Security %d  Morale %d",
		k.Stats.Gold, k.Stats.Supplies, k.Stats.Knowledge, k.Stats.Influence, k.Stats.Security, k.Stats.Morale))
	for _, b := range k.Buildings {
		state := fmt.Sprintf("%d gold, %d supplies", b.CostGold, b.CostSupplies)
		if b.Built {
			state = fmt.Sprintf("level %d", b.Level)
		}
		r.Line(fmt.Sprintf("  [%s] %s (%s): %s", b.ID, b.Name, state, b.Description))
	}
	r.Line("Roster:")
	for i, a := range env.Roster.Adventurers {
		label := fmt.Sprintf("%s the %s, stress %d", a.Name, a.Class, a.Stress)
		if a.IsStressed() {
			label += " (too stressed to deploy)"
		}
		for _, in := range a.Injuries {
			label += fmt.Sprintf(" [%s, %d days]", in.Name, in.HealingDays)
		}
		r.Option(i, label, i == s.Cursor)
		r.Meter("HP", a.HP, a.MaxHP)
	}
	if n := env.Roster.FallenCount(); n > 0 {
		r.Line(fmt.Sprintf("%d lie in the graveyard.", n))
	}
	if s.Notice != "" {
		r.Line(s.Notice)
	}
}

func rosterAt(r *kingdom.Roster, i int) (*kingdom.Adventurer, bool) {
	if i < 0 || i >= r.Len() {
		return nil, false
	}
	return r.Adventurers[i], true
}

// wrap keeps a cursor inside [0, n).
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
