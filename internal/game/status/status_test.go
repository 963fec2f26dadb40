package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/frontier/internal/game/status"
)

func TestType_DebuffClassification(t *testing.T) {
	debuffs := map[status.Type]bool{
		status.Vulnerable: true, status.Weak: true, status.Stun: true, status.Poison: true, status.Burn: true,
	}
	for _, typ := range status.Types() {
		assert.Equal(t, debuffs[typ], typ.IsDebuff(), typ.String())
	}
}

func TestParseType_RoundTripsNames(t *testing.T) {
	for _, typ := range status.Types() {
		got, err := status.ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	_, err := status.ParseType("Haste")
	assert.Error(t, err)
}

func TestType_UnmarshalYAML(t *testing.T) {
	var e status.Effect
	require.NoError(t, yaml.Unmarshal([]byte("type: Vulnerable\nduration: 2\nvalue: 1\n"), &e))
	assert.Equal(t, status.Effect{Type: status.Vulnerable, Duration: 2, Value: 1}, e)
}

func TestList_AddRefreshesByMax(t *testing.T) {
	var l status.List
	l.Add(status.Effect{Type: status.Strength, Duration: 3, Value: 1})
	l.Add(status.Effect{Type: status.Strength, Duration: 1, Value: 4})
	require.Equal(t, 1, l.Len())
	e, ok := l.Get(status.Strength)
	require.True(t, ok)
	assert.Equal(t, 3, e.Duration)
	assert.Equal(t, 4, e.Value)
}

func TestList_TickRegenAndExpiry(t *testing.T) {
	var l status.List
	l.Add(status.Effect{Type: status.Regen, Duration: 1, Value: 4})
	l.Add(status.Effect{Type: status.Poison, Duration: 2, Value: 3})
	res := l.Tick()
	assert.Equal(t, 4, res.Heal)
	assert.Equal(t, 3, res.Damage)
	assert.Equal(t, []status.Type{status.Regen}, res.Expired)
	assert.False(t, l.Has(status.Regen))
	assert.True(t, l.Has(status.Poison))
}

func TestList_ClearDebuffs(t *testing.T) {
	var l status.List
	l.Add(status.Effect{Type: status.Weak, Duration: 2, Value: 1})
	l.Add(status.Effect{Type: status.Strength, Duration: 2, Value: 1})
	l.Add(status.Effect{Type: status.Burn, Duration: 2, Value: 1})
	assert.Equal(t, 2, l.ClearDebuffs())
	assert.Equal(t, []status.Effect{{Type: status.Strength, Duration: 2, Value: 1}}, l.All())
}

func genEffect(t *rapid.T, label string) status.Effect {
	return status.Effect{
		Type:     rapid.SampledFrom(status.Types()).Draw(t, label+"_type"),
		Duration: rapid.IntRange(1, 6).Draw(t, label+"_duration"),
		Value:    rapid.IntRange(0, 10).Draw(t, label+"_value"),
	}
}

// Property: re-applying a type never duplicates it; duration and value equal the pairwise max.
func TestPropertyStackingNeverDuplicates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var l status.List
		want := map[status.Type]status.Effect{}
		n := rapid.IntRange(1, 20).Draw(t, "n")
		for i := 0; i < n; i++ {
			e := genEffect(t, "e")
			l.Add(e)
			if old, ok := want[e.Type]; ok {
				e.Duration = max(old.Duration, e.Duration)
				e.Value = max(old.Value, e.Value)
			}
			want[e.Type] = e
		}
		if l.Len() != len(want) {
			t.Fatalf("len=%d want %d", l.Len(), len(want))
		}
		for typ, w := range want {
			got, ok := l.Get(typ)
			if !ok || got != w {
				t.Fatalf("%s: got %+v want %+v", typ, got, w)
			}
		}
	})
}

// Property: a tick never leaves a non-positive duration and removes duration-1 statuses.
func TestPropertyTickNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var l status.List
		n := rapid.IntRange(0, 8).Draw(t, "n")
		for i := 0; i < n; i++ {
			l.Add(genEffect(t, "e"))
		}
		before := l.All()
		l.Tick()
		for _, e := range l.All() {
			if e.Duration <= 0 {
				t.Fatalf("retained %+v", e)
			}
		}
		for _, e := range before {
			if e.Duration == 1 && l.Has(e.Type) {
				t.Fatalf("%s with duration 1 survived a tick", e.Type)
			}
		}
	})
}
