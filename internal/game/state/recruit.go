package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/frontier/internal/game/kingdom"
)

// RecruitState is the guild hall. Hired offers leave the list.
type RecruitState struct {
	Offers []kingdom.Recruit
	Cursor int
	Notice string
}

// NewRecruitState draws a fresh pool of candidates.
func NewRecruitState(env *Env) *RecruitState {
	return &RecruitState{Offers: kingdom.GenerateRecruits(env.Src, env.Rules.RecruitPool)}
}

func (s *RecruitState) Kind() Kind { return KindRecruit }

// Update hires the highlighted offer on Confirm, or offer Input.Index on Select.
func (s *RecruitState) Update(env *Env, in Input) Transition {
	switch in.Action {
	case ActionUp:
		s.Cursor = wrap(s.Cursor-1, len(s.Offers))
	case ActionDown:
		s.Cursor = wrap(s.Cursor+1, len(s.Offers))
	case ActionSelect:
		s.hire(env, in.Index)
	case ActionConfirm:
		s.hire(env, s.Cursor)
	case ActionCancel:
		return ToBase{}
	}
	return nil
}

func (s *RecruitState) hire(env *Env, i int) {
	if i < 0 || i >= len(s.Offers) {
		s.Notice = "No such recruit."
		return
	}
	a, err := s.Offers[i].Hire(env.Kingdom, env.Roster)
	if err != nil {
		s.Notice = err.Error()
		return
	}
	s.Offers = append(s.Offers[:i], s.Offers[i+1:]...)
	s.Cursor = wrap(s.Cursor, len(s.Offers))
	s.Notice = fmt.Sprintf("%s the %s joins the roster.", a.Name, a.Class)
	env.Logger.Info("adventurer hired", zap.String("id", a.ID), zap.String("class", string(a.Class)))
}

func (s *RecruitState) Draw(env *Env, r Renderer) {
	r.Title(fmt.Sprintf("Guild Hall (%d gold)", env.Kingdom.Stats.Gold))
	for i, o := range s.Offers {
		r.Option(i, fmt.Sprintf("%s, %s %s: %d gold", o.Name, o.Gender, o.Class, o.Cost), i == s.Cursor)
	}
	if len(s.Offers) == 0 {
		r.Line("No one else is looking for work.")
	}
	if s.Notice != "" {
		r.Line(s.Notice)
	}
}
