// Package adventure provides the branching-narrative state machine.
//
// An Engine holds a cursor into a story graph. The only mutable state is the
// current node id and whether the adventure is complete; MakeChoice is the
// only transition, and Reset returns to the root.
package adventure

import (
	"errors"
	"fmt"

	"github.com/samdwyer/forestquest/internal/story"
)

var (
	// ErrInvalidChoice is returned for a choice index the current node does not offer.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrAdventureComplete is returned for a choice made after the adventure ended.
	ErrAdventureComplete = errors.New("adventure is complete")
)

// State is a snapshot of the engine's position.
type State struct {
	NodeID   int
	Complete bool
}

// Engine walks a story graph one choice at a time.
// An Engine is not safe for concurrent use; it belongs to the screen showing it.
type Engine struct {
	registry      *story.Registry
	currentNodeID int
	complete      bool
}

// New creates an engine positioned at the story's root.
func New(registry *story.Registry) *Engine {
	return &Engine{
		registry:      registry,
		currentNodeID: registry.RootID(),
	}
}

// CurrentNode returns the node the adventure is at.
func (e *Engine) CurrentNode() story.Node {
	// The registry guarantees every reachable id exists.
	node, _ := e.registry.GetByID(e.currentNodeID)
	return node
}

// MakeChoice takes the choice at choiceIndex on the current node.
// No state changes when an error is returned.
func (e *Engine) MakeChoice(choiceIndex int) (Outcome, error) {
	if e.complete {
		return Outcome{}, ErrAdventureComplete
	}

	current := e.CurrentNode()
	if choiceIndex < 0 || choiceIndex >= len(current.Choices) {
		return Outcome{}, fmt.Errorf("choice %d at node %d: %w", choiceIndex, current.ID, ErrInvalidChoice)
	}

	choice := current.Choices[choiceIndex]

	next, ok := choice.Next()
	if !ok {
		// No destination: the current node's text is the ending.
		e.complete = true
		return ending(choice.IsSuccessful, current.Story), nil
	}

	e.currentNodeID = next
	destination := e.CurrentNode()
	if destination.IsEndStep {
		e.complete = true
		return ending(choice.IsSuccessful, destination.Story), nil
	}
	return Ongoing, nil
}

// Reset returns the adventure to the root node.
func (e *Engine) Reset() {
	e.currentNodeID = e.registry.RootID()
	e.complete = false
}

// IsComplete returns true once an ending has been reached.
func (e *Engine) IsComplete() bool {
	return e.complete
}

// State returns the current position.
func (e *Engine) State() State {
	return State{NodeID: e.currentNodeID, Complete: e.complete}
}
