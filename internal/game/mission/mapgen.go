package mission

import (
	"github.com/cory-johannsen/frontier/internal/game/dice"
)

// NodeType is what happens at a map node.
type NodeType int

const (
	NodeCombat NodeType = iota
	NodeEvent
	NodeRest
	NodeBoss
)

func (n NodeType) String() string {
	switch n {
	case NodeCombat:
		return "Combat"
	case NodeEvent:
		return "Event"
	case NodeRest:
		return "Rest"
	case NodeBoss:
		return "Boss"
	}
	return "Unknown"
}

// Tuning for map generation.
const (
	restChance      = 0.3
	restLayerPeriod = 3
)

// MapNode is one encounter point in a mission map. IDs are indexes into the
// slice returned by GenerateBranchingMap.
type MapNode struct {
	ID          int      `json:"id"`
	Type        NodeType `json:"node_type"`
	Connections []int    `json:"connections"`
	Layer       int      `json:"layer"`
	Position    int      `json:"position"`
}

// IsTerminal reports whether the node ends the mission.
func (n MapNode) IsTerminal() bool { return len(n.Connections) == 0 }

// GenerateBranchingMap builds a layered DAG with one node per mission length
// step. The entry layer and the final layer each hold exactly one node; middle
// layers hold 1 to 2 nodes, or 1 to 3 when the mission is 6 or more long.
// Every non-final node has at least one outgoing edge and every non-entry node
// at least one incoming edge.
//
// Precondition: src must be non-nil.
// Postcondition: a mission of length 0 or 1 yields a single terminal node of
// type m.Type.FinalNode().
func GenerateBranchingMap(m Mission, src dice.Source) []MapNode {
	if m.Length <= 1 {
		return []MapNode{{ID: 0, Type: m.Type.FinalNode()}}
	}

	maxBranches := 2
	if m.Length >= 6 {
		maxBranches = 3
	}
	combatChance := m.Type.CombatChance()

	var nodes []MapNode
	layers := make([][]int, m.Length)
	for layer := 0; layer < m.Length; layer++ {
		count := 1
		if layer != 0 && layer != m.Length-1 {
			count = dice.Range(src, 1, maxBranches)
		}
		for pos := 0; pos < count; pos++ {
			var nt NodeType
			switch {
			case layer == 0:
				nt = NodeEvent
			case layer == m.Length-1:
				nt = m.Type.FinalNode()
			case dice.Roll(src, "combat node", combatChance):
				nt = NodeCombat
			case layer%restLayerPeriod == 0 && dice.Roll(src, "rest node", restChance):
				nt = NodeRest
			default:
				nt = NodeEvent
			}
			id := len(nodes)
			nodes = append(nodes, MapNode{ID: id, Type: nt, Layer: layer, Position: pos})
			layers[layer] = append(layers[layer], id)
		}
	}

	for layer := 0; layer < m.Length-1; layer++ {
		cur, next := layers[layer], layers[layer+1]
		for _, from := range cur {
			n := 1
			if len(next) > 1 {
				n = dice.Range(src, 1, 2)
			}
			nodes[from].Connections = append(nodes[from].Connections, dice.Sample(src, next, n)...)
		}
		// Repair pass: a random fan-out can strand nodes in the next layer.
		for _, to := range next {
			if hasIncoming(nodes, cur, to) {
				continue
			}
			from := cur[src.Intn(len(cur))]
			nodes[from].Connections = append(nodes[from].Connections, to)
		}
	}
	return nodes
}

func hasIncoming(nodes []MapNode, from []int, to int) bool {
	for _, f := range from {
		for _, c := range nodes[f].Connections {
			if c == to {
				return true
			}
		}
	}
	return false
}

// LayerCount returns the number of layers in a generated map.
func LayerCount(nodes []MapNode) int {
	n := 0
	for _, node := range nodes {
		n = max(n, node.Layer+1)
	}
	return n
}
