package kingdom

import (
	"fmt"
	"strings"
)

// UnlockKind selects what an UnlockRequirement checks.
type UnlockKind string

const (
	UnlockNone            UnlockKind = "none"
	UnlockBuilding        UnlockKind = "building"
	UnlockKnowledge       UnlockKind = "knowledge"
	UnlockMissionComplete UnlockKind = "mission_complete"
)

// UnlockRequirement gates a mission or region. The zero value is always met.
type UnlockRequirement struct {
	Type      UnlockKind `json:"type" yaml:"type"`
	Building  string     `json:"building,omitempty" yaml:"building,omitempty"`
	Amount    int        `json:"amount,omitempty" yaml:"amount,omitempty"`
	MissionID string     `json:"mission_id,omitempty" yaml:"mission_id,omitempty"`
}

// IsMet reports whether the kingdom currently satisfies the requirement.
func (u UnlockRequirement) IsMet(k *State) bool {
	switch u.Type {
	case UnlockBuilding:
		return k.HasBuilt(u.Building)
	case UnlockKnowledge:
		return k.Stats.Knowledge >= u.Amount
	case UnlockMissionComplete:
		return k.HasCompleted(u.MissionID)
	default:
		return true
	}
}

// Description is the player-facing text for the requirement.
func (u UnlockRequirement) Description() string {
	switch u.Type {
	case UnlockBuilding:
		return fmt.Sprintf("Requires: %s (Building)", strings.ReplaceAll(u.Building, "_", " "))
	case UnlockKnowledge:
		return fmt.Sprintf("Requires: %d Knowledge", u.Amount)
	case UnlockMissionComplete:
		return fmt.Sprintf("Requires: Complete %q", strings.ReplaceAll(u.MissionID, "_", " "))
	default:
		return "Available"
	}
}
