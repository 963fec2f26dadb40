package kingdom_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/frontier/internal/game/kingdom"
)

func TestNewAdventurer_ClassHP(t *testing.T) {
	want := map[kingdom.Class]int{kingdom.Soldier: 45, kingdom.Scout: 35, kingdom.Healer: 30, kingdom.Mystic: 32}
	for c, hp := range want {
		a := kingdom.NewAdventurer("n", c, kingdom.Male)
		assert.Equal(t, hp, a.HP, "class %s", c)
		assert.Equal(t, hp, a.MaxHP)
		assert.Equal(t, 1, a.Level)
		assert.True(t, a.Available)
	}
	a := kingdom.NewAdventurer("a", kingdom.Scout, kingdom.Male)
	b := kingdom.NewAdventurer("b", kingdom.Scout, kingdom.Male)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "assets/images/characters/scout_male.png", a.ImagePath)
}

func TestAddStress_TraumaThresholds(t *testing.T) {
	a := kingdom.NewAdventurer("Edmund", kingdom.Soldier, kingdom.Male)

	assert.Nil(t, a.AddStress(49))
	tr := a.AddStress(1)
	require.NotNil(t, tr)
	assert.Equal(t, kingdom.Fearful, tr.Type)
	assert.Equal(t, 1, tr.Severity)

	assert.Nil(t, a.AddStress(5), "Fearful is gained once")

	tr = a.AddStress(100)
	require.NotNil(t, tr)
	assert.Equal(t, kingdom.Broken, tr.Type, "highest threshold wins")
	assert.Equal(t, kingdom.MaxStress, a.Stress)

	tr = a.AddStress(1)
	require.NotNil(t, tr)
	assert.Equal(t, kingdom.Paranoid, tr.Type)
	assert.Nil(t, a.AddStress(1))
	assert.Len(t, a.Traumas, 3)
}

func TestReduceStressAndHeal_Clamp(t *testing.T) {
	a := kingdom.NewAdventurer("Vera", kingdom.Healer, kingdom.Female)
	a.Stress = 5
	a.ReduceStress(20)
	assert.Equal(t, 0, a.Stress)

	a.HP = 25
	a.Heal(100)
	assert.Equal(t, 30, a.HP)
}

func TestInjuries_HealOverDays(t *testing.T) {
	a := kingdom.NewAdventurer("Klaus", kingdom.Soldier, kingdom.Male)
	a.AddInjury(kingdom.WoundedLeg())
	a.AddInjury(kingdom.BrokenArm())
	a.AddInjury(kingdom.WoundedLeg())
	require.Len(t, a.Injuries, 2)
	assert.True(t, a.IsInjured())

	assert.Empty(t, a.RestDay())
	assert.Empty(t, a.RestDay())
	assert.Equal(t, []string{"wounded_leg"}, a.RestDay())
	a.RestDay()
	assert.Equal(t, []string{"broken_arm"}, a.RestDay())
	assert.False(t, a.IsInjured())
}

func TestStarterRoster(t *testing.T) {
	r := kingdom.StarterRoster()
	require.Equal(t, 3, r.Len())
	names := []string{}
	for _, a := range r.Adventurers {
		names = append(names, a.Name)
		assert.Equal(t, 10, a.Stress)
	}
	assert.Equal(t, []string{"Marcus", "Elena", "Brother Aldric"}, names)
	assert.Len(t, r.Available(), 3)
}

func TestRoster_AvailableExcludesStressed(t *testing.T) {
	r := kingdom.StarterRoster()
	r.Adventurers[0].Stress = 50
	r.Adventurers[1].Available = false
	avail := r.Available()
	require.Len(t, avail, 1)
	assert.Equal(t, "Brother Aldric", avail[0].Name)
}

func TestRoster_RecordDeath(t *testing.T) {
	r := kingdom.StarterRoster()
	id := r.Adventurers[1].ID
	require.NoError(t, r.RecordDeath(id))
	_, ok := r.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 1, r.FallenCount())
	assert.True(t, errors.Is(r.RecordDeath(id), kingdom.ErrAdventurerNotFound))
}

func TestParty_AddRemove(t *testing.T) {
	p := kingdom.NewParty(0)
	assert.Equal(t, kingdom.MaxPartySize, p.Capacity)
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, p.Add(id))
	}
	assert.True(t, errors.Is(p.Add("e"), kingdom.ErrPartyFull))
	assert.Equal(t, 4, p.Len())

	leader, ok := p.Leader()
	require.True(t, ok)
	assert.Equal(t, "a", leader)

	assert.True(t, errors.Is(p.Remove("a"), kingdom.ErrLeaderRequired))
	require.NoError(t, p.Remove("c"))
	assert.True(t, errors.Is(p.Remove("c"), kingdom.ErrNotInParty))
	assert.Equal(t, []string{"a", "b", "d"}, p.MemberIDs)

	require.NoError(t, p.Toggle("b"))
	require.NoError(t, p.Toggle("d"))
	require.NoError(t, p.Toggle("a"), "the last member may leave")
	assert.True(t, p.IsEmpty())
}

func TestParty_RejectsDuplicate(t *testing.T) {
	p := kingdom.NewParty(2)
	require.NoError(t, p.Add("a"))
	assert.True(t, errors.Is(p.Add("a"), kingdom.ErrAlreadyInParty))
}

func TestSnapshotAndSettle_Victory(t *testing.T) {
	r := kingdom.StarterRoster()
	p := kingdom.NewParty(0)
	for _, a := range r.Adventurers {
		require.NoError(t, p.Add(a.ID))
	}
	members := p.Snapshot(r)
	require.Len(t, members, 3)
	assert.Equal(t, kingdom.Soldier, members[0].Class)

	members[0].Adjust(-20, 45) // Marcus: 25 HP, 55 stress
	members[1].Adjust(-100, 0) // Elena falls
	members[2].Adjust(0, -30)  // Aldric: 0 stress

	s := r.Settle(members, kingdom.Victory)
	assert.Equal(t, []string{members[1].ID}, s.Fallen)
	assert.Len(t, s.Survivors, 2)
	assert.Equal(t, kingdom.Fearful, s.Traumas[members[0].ID])

	marcus, ok := r.Get(members[0].ID)
	require.True(t, ok)
	assert.Equal(t, 25, marcus.HP)
	assert.Equal(t, 55, marcus.Stress)
	assert.Equal(t, 1, marcus.MissionsCompleted)

	aldric, _ := r.Get(members[2].ID)
	assert.Equal(t, 0, aldric.Stress)
	assert.Equal(t, 1, r.FallenCount())
}

func TestSettle_DefeatInjuresSurvivors(t *testing.T) {
	r := kingdom.StarterRoster()
	p := kingdom.NewParty(0)
	require.NoError(t, p.Add(r.Adventurers[0].ID))
	members := p.Snapshot(r)
	members[0].HP = 1

	r.Settle(members, kingdom.Defeat)
	a := r.Adventurers[0]
	assert.Equal(t, 1, a.HP)
	assert.Equal(t, 0, a.MissionsCompleted)
	require.Len(t, a.Injuries, 1)
	assert.Equal(t, "wounded_leg", a.Injuries[0].ID)
}

func TestPropertyAdjustClamps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := kingdom.PartyMemberState{
			MaxHP:  rapid.IntRange(1, 60).Draw(t, "max"),
			Stress: rapid.IntRange(0, 100).Draw(t, "stress"),
		}
		m.HP = rapid.IntRange(0, m.MaxHP).Draw(t, "hp")
		m.Adjust(rapid.IntRange(-200, 200).Draw(t, "dhp"), rapid.IntRange(-200, 200).Draw(t, "dstress"))
		if m.HP < 0 || m.HP > m.MaxHP {
			t.Fatalf("hp %d outside [0,%d]", m.HP, m.MaxHP)
		}
		if m.Stress < 0 || m.Stress > kingdom.MaxStress {
			t.Fatalf("stress %d outside [0,100]", m.Stress)
		}
	})
}

func TestPropertyPartyNeverExceedsCapacity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := kingdom.NewParty(rapid.IntRange(1, 6).Draw(t, "cap"))
		ids := rapid.SliceOf(rapid.SampledFrom([]string{"a", "b", "c", "d", "e", "f", "g"})).Draw(t, "ops")
		for _, id := range ids {
			_ = p.Toggle(id)
			if p.Len() > p.Capacity {
				t.Fatalf("len %d > cap %d", p.Len(), p.Capacity)
			}
			seen := map[string]bool{}
			for _, m := range p.MemberIDs {
				if seen[m] {
					t.Fatalf("duplicate member %s", m)
				}
				seen[m] = true
			}
		}
	})
}
