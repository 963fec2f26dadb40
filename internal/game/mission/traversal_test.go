package mission_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/frontier/internal/game/dice"
	"github.com/cory-johannsen/frontier/internal/game/mission"
)

// diamond: 0 -> {1,2} -> 3
func diamond() []mission.MapNode {
	return []mission.MapNode{
		{ID: 0, Type: mission.NodeEvent, Connections: []int{1, 2}, Layer: 0},
		{ID: 1, Type: mission.NodeCombat, Connections: []int{3}, Layer: 1, Position: 0},
		{ID: 2, Type: mission.NodeRest, Connections: []int{3}, Layer: 1, Position: 1},
		{ID: 3, Type: mission.NodeEvent, Layer: 2},
	}
}

func TestTraversal_ChoiceProtocol(t *testing.T) {
	tr := mission.NewTraversal(diamond())
	assert.Equal(t, 0, tr.Current().ID)
	assert.False(t, tr.AwaitingChoice())

	_, err := tr.Confirm()
	assert.True(t, errors.Is(err, mission.ErrNoChoicePending))

	assert.Equal(t, mission.StepChoiceRequired, tr.Advance())
	require.True(t, tr.AwaitingChoice())
	assert.Len(t, tr.Choices(), 2)
	assert.Equal(t, mission.StepChoiceRequired, tr.Advance(), "advancing while choosing is a no-op")

	tr.MoveSelection(1)
	assert.Equal(t, 1, tr.Selected())
	tr.MoveSelection(1)
	assert.Equal(t, 0, tr.Selected(), "selection wraps")
	tr.MoveSelection(-1)
	assert.Equal(t, 1, tr.Selected())

	assert.True(t, errors.Is(tr.Select(2), mission.ErrChoiceOutOfRange))
	require.NoError(t, tr.Select(1))

	n, err := tr.Confirm()
	require.NoError(t, err)
	assert.Equal(t, 2, n.ID)
	assert.Equal(t, mission.NodeRest, tr.Current().Type)
	assert.False(t, tr.AwaitingChoice())

	assert.Equal(t, mission.StepMoved, tr.Advance())
	assert.Equal(t, 3, tr.Current().ID)
	assert.Equal(t, mission.StepComplete, tr.Advance())
	assert.Equal(t, []int{0, 2, 3}, tr.Visited())
	assert.Equal(t, 3, tr.LayersVisited())
}

func TestTraversal_SelectWithoutChoice(t *testing.T) {
	tr := mission.NewTraversal(diamond())
	assert.True(t, errors.Is(tr.Select(0), mission.ErrNoChoicePending))
}

func TestPropertyTraversalVisitsEveryLayer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := mission.Mission{
			Type:   rapid.SampledFrom([]mission.Type{mission.Scout, mission.Suppress, mission.Secure, mission.Investigate}).Draw(t, "type"),
			Length: rapid.IntRange(0, 10).Draw(t, "length"),
		}
		nodes := mission.GenerateBranchingMap(m, dice.NewSeededSource(rapid.Int64().Draw(t, "seed")))
		tr := mission.NewTraversal(nodes)
		for steps := 0; ; steps++ {
			if steps > 2*len(nodes)+2 {
				t.Fatalf("traversal did not terminate")
			}
			switch tr.Advance() {
			case mission.StepComplete:
				want := max(m.Length, 1)
				if tr.LayersVisited() != want {
					t.Fatalf("visited %d layers, want %d", tr.LayersVisited(), want)
				}
				return
			case mission.StepChoiceRequired:
				i := rapid.IntRange(0, len(tr.Choices())-1).Draw(t, "choice")
				if err := tr.Select(i); err != nil {
					t.Fatal(err)
				}
				if _, err := tr.Confirm(); err != nil {
					t.Fatal(err)
				}
			}
		}
	})
}
