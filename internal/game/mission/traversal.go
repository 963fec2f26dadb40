package mission

import (
	"errors"
	"fmt"
)

var (
	// ErrNoChoicePending is returned by path-choice calls outside AwaitingPathChoice.
	ErrNoChoicePending = errors.New("no path choice pending")
	// ErrChoiceOutOfRange is returned when selecting a path index that does not exist.
	ErrChoiceOutOfRange = errors.New("path choice out of range")
)

// Step is the result of Traversal.Advance.
type Step int

const (
	// StepMoved means the single outgoing edge was followed; resolve Current.
	StepMoved Step = iota
	// StepChoiceRequired means the player must pick one of Choices.
	StepChoiceRequired
	// StepComplete means the current node is terminal and the mission is won.
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepMoved:
		return "moved"
	case StepChoiceRequired:
		return "choice required"
	case StepComplete:
		return "complete"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Traversal walks a party through a generated map. It is either at a node
// or awaiting a path choice among the current node's connections.
type Traversal struct {
	nodes    []MapNode
	current  int
	visited  []int
	choices  []int
	selected int
}

// NewTraversal starts at the entry node.
//
// Precondition: nodes was produced by GenerateBranchingMap and is non-empty.
func NewTraversal(nodes []MapNode) *Traversal {
	return &Traversal{nodes: nodes, visited: []int{0}}
}

// Nodes returns the map being traversed.
func (t *Traversal) Nodes() []MapNode { return t.nodes }

// Current returns the node the party stands on.
func (t *Traversal) Current() MapNode { return t.nodes[t.current] }

// Visited returns node ids in the order they were entered, starting with the entry node.
func (t *Traversal) Visited() []int { return append([]int(nil), t.visited...) }

// LayersVisited counts the distinct layers entered so far.
func (t *Traversal) LayersVisited() int {
	seen := map[int]bool{}
	for _, id := range t.visited {
		seen[t.nodes[id].Layer] = true
	}
	return len(seen)
}

// AwaitingChoice reports whether a path choice is pending.
func (t *Traversal) AwaitingChoice() bool { return t.choices != nil }

// Choices returns the nodes offered by a pending path choice.
func (t *Traversal) Choices() []MapNode {
	out := make([]MapNode, 0, len(t.choices))
	for _, id := range t.choices {
		out = append(out, t.nodes[id])
	}
	return out
}

// Selected returns the highlighted index into Choices.
func (t *Traversal) Selected() int { return t.selected }

// Advance leaves the current node. With no outgoing edge the mission is
// complete; with one the party moves automatically; with more a path choice
// becomes pending. Calling Advance while a choice is pending changes nothing.
func (t *Traversal) Advance() Step {
	if t.AwaitingChoice() {
		return StepChoiceRequired
	}
	conns := t.nodes[t.current].Connections
	switch len(conns) {
	case 0:
		return StepComplete
	case 1:
		t.enter(conns[0])
		return StepMoved
	default:
		t.choices = append([]int(nil), conns...)
		t.selected = 0
		return StepChoiceRequired
	}
}

// Select highlights choice i.
func (t *Traversal) Select(i int) error {
	if !t.AwaitingChoice() {
		return ErrNoChoicePending
	}
	if i < 0 || i >= len(t.choices) {
		return fmt.Errorf("%w: %d of %d", ErrChoiceOutOfRange, i, len(t.choices))
	}
	t.selected = i
	return nil
}

// MoveSelection shifts the highlighted choice by delta, wrapping around.
func (t *Traversal) MoveSelection(delta int) {
	if n := len(t.choices); n > 0 {
		t.selected = ((t.selected+delta)%n + n) % n
	}
}

// Confirm follows the highlighted path and returns the node entered.
func (t *Traversal) Confirm() (MapNode, error) {
	if !t.AwaitingChoice() {
		return MapNode{}, ErrNoChoicePending
	}
	t.enter(t.choices[t.selected])
	return t.Current(), nil
}

func (t *Traversal) enter(id int) {
	t.current = id
	t.visited = append(t.visited, id)
	t.choices = nil
	t.selected = 0
}
