package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/game/kingdom"
	"github.com/cory-johannsen/frontier/internal/game/mission"
)

// MissionSelectState picks a contract and assembles a party from deployable adventurers.
type MissionSelectState struct {
	Cursor int
	Party  *kingdom.Party
	Notice string
}

// NewMissionSelectState opens selection with an empty party sized by the rules.
func NewMissionSelectState(env *Env) *MissionSelectState {
	return &MissionSelectState{Party: kingdom.NewParty(env.Rules.PartySize)}
}

func (s *MissionSelectState) Kind() Kind { return KindMissionSelect }

// Update moves the mission cursor with Up/Down, toggles the deployable
// adventurer at Input.Index with Select, and departs on Confirm.
func (s *MissionSelectState) Update(env *Env, in Input) Transition {
	missions := env.Content.Missions()
	switch in.Action {
	case ActionUp:
		s.Cursor = wrap(s.Cursor-1, len(missions))
	case ActionDown:
		s.Cursor = wrap(s.Cursor+1, len(missions))
	case ActionSelect:
		avail := env.Roster.Available()
		if in.Index < 0 || in.Index >= len(avail) {
			s.Notice = "No such adventurer."
			return nil
		}
		if err := s.Party.Toggle(avail[in.Index].ID); err != nil {
			s.Notice = err.Error()
		} else {
			s.Notice = ""
		}
	case ActionConfirm:
		return s.depart(env, missions)
	case ActionCancel:
		return ToBase{}
	}
	return nil
}

func (s *MissionSelectState) depart(env *Env, missions []mission.Mission) Transition {
	if s.Cursor >= len(missions) {
		s.Notice = "No mission selected."
		return nil
	}
	m := missions[s.Cursor]
	if !m.UnlockRequirement.IsMet(env.Kingdom) {
		s.Notice = m.UnlockRequirement.Description()
		return nil
	}
	members := s.Party.Snapshot(env.Roster)
	if len(members) == 0 {
		s.Notice = "Choose at least one adventurer."
		return nil
	}
	nodes := mission.GenerateBranchingMap(m, env.Src)
	env.Logger.Info("expedition departs",
		zap.String("mission", m.ID),
		zap.Int("party", len(members)),
		zap.Int("nodes", len(nodes)),
	)
	return ToMission{State: NewMissionState(m, nodes, members)}
}

func (s *MissionSelectState) Draw(env *Env, r Renderer) {
	r.Title("Choose an expedition")
	for i, m := range env.Content.Missions() {
		label := fmt.Sprintf("%s (%s, length %d, difficulty %d)", m.Name, m.Type, m.Length, m.Difficulty)
		if !m.UnlockRequirement.IsMet(env.Kingdom) {
			label += " - " + m.UnlockRequirement.Description()
		}
		r.Option(i, label, i == s.Cursor)
	}
	r.Line("Deployable adventurers:")
	for i, a := range env.Roster.Available() {
		r.Option(i, fmt.Sprintf("%s the %s", a.Name, a.Class), s.Party.Contains(a.ID))
	}
	r.Line(fmt.Sprintf("Party %d/%d", s.Party.Len(), s.Party.Capacity))
	if s.Notice != "" {
		r.Line(s.Notice)
	}
}
