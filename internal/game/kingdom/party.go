package kingdom

import (
	"errors"
	"fmt"
)

// MaxPartySize is the default party capacity.
const MaxPartySize = 4

var (
	// ErrPartyFull is returned when adding to a party at capacity.
	ErrPartyFull = errors.New("party is full")
	// ErrAlreadyInParty is returned when adding a member twice.
	ErrAlreadyInParty = errors.New("already in party")
	// ErrNotInParty is returned when removing an absent member.
	ErrNotInParty = errors.New("not in party")
	// ErrLeaderRequired is returned when removing the leader while others remain.
	ErrLeaderRequired = errors.New("the leader cannot leave while others remain")
)

// Party is an ordered list of adventurer ids; the first is the leader.
// It never holds adventurer records, only references into a Roster.
type Party struct {
	MemberIDs []string `json:"member_ids"`
	Capacity  int      `json:"capacity"`
}

// NewParty returns an empty party. A capacity below 1 selects MaxPartySize.
func NewParty(capacity int) *Party {
	if capacity < 1 {
		capacity = MaxPartySize
	}
	return &Party{Capacity: capacity}
}

// Leader returns the first member's id.
func (p *Party) Leader() (string, bool) {
	if len(p.MemberIDs) == 0 {
		return "", false
	}
	return p.MemberIDs[0], true
}

func (p *Party) Len() int      { return len(p.MemberIDs) }
func (p *Party) IsEmpty() bool { return len(p.MemberIDs) == 0 }
func (p *Party) IsFull() bool  { return len(p.MemberIDs) >= p.Capacity }

// Contains reports whether id is a member.
func (p *Party) Contains(id string) bool {
	for _, m := range p.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

// Add appends id to the party.
//
// Postcondition: on error the party is unchanged.
func (p *Party) Add(id string) error {
	if p.IsFull() {
		return fmt.Errorf("%w (%d/%d)", ErrPartyFull, p.Len(), p.Capacity)
	}
	if p.Contains(id) {
		return fmt.Errorf("%w: %s", ErrAlreadyInParty, id)
	}
	p.MemberIDs = append(p.MemberIDs, id)
	return nil
}

// Remove drops id from the party. The leader may only leave last.
func (p *Party) Remove(id string) error {
	for i, m := range p.MemberIDs {
		if m != id {
			continue
		}
		if i == 0 && len(p.MemberIDs) > 1 {
			return ErrLeaderRequired
		}
		p.MemberIDs = append(p.MemberIDs[:i], p.MemberIDs[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotInParty, id)
}

// Toggle adds id if absent and removes it if present.
func (p *Party) Toggle(id string) error {
	if p.Contains(id) {
		return p.Remove(id)
	}
	return p.Add(id)
}

// Clear empties the party.
func (p *Party) Clear() { p.MemberIDs = nil }

// Snapshot copies each member's current condition out of the roster.
// Ids no longer in the roster are skipped.
func (p *Party) Snapshot(r *Roster) []PartyMemberState {
	out := make([]PartyMemberState, 0, len(p.MemberIDs))
	for _, id := range p.MemberIDs {
		if a, ok := r.Get(id); ok {
			out = append(out, FromAdventurer(a))
		}
	}
	return out
}

// PartyMemberState is a by-value copy of an adventurer carried through a
// mission and its combats. Changes reach the roster only through Roster.Settle.
type PartyMemberState struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"max_hp"`
	Stress    int    `json:"stress"`
	ImagePath string `json:"image_path,omitempty"`
	Class     Class  `json:"class_name"`
	// DeckAdditions are card ids unlocked beyond the class deck.
	DeckAdditions []string `json:"deck_additions,omitempty"`
}

// FromAdventurer snapshots a.
func FromAdventurer(a *Adventurer) PartyMemberState {
	return PartyMemberState{
		ID:        a.ID,
		Name:      a.Name,
		HP:        a.HP,
		MaxHP:     a.MaxHP,
		Stress:    a.Stress,
		ImagePath: a.ImagePath,
		Class:     a.Class,

		DeckAdditions: append([]string(nil), a.DeckAdditions...),
	}
}

// IsAlive reports whether the member still stands.
func (m PartyMemberState) IsAlive() bool { return m.HP > 0 }

// Adjust applies an HP and stress change, clamping HP to [0, MaxHP] and stress to [0, MaxStress].
func (m *PartyMemberState) Adjust(hp, stress int) {
	m.HP = clamp(m.HP+hp, 0, m.MaxHP)
	m.Stress = clamp(m.Stress+stress, 0, MaxStress)
}

// AnyAlive reports whether at least one member still stands.
func AnyAlive(members []PartyMemberState) bool {
	for _, m := range members {
		if m.IsAlive() {
			return true
		}
	}
	return false
}
