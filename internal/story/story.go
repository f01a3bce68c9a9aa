// Package story provides story definitions, loading, and validation.
package story

// =============================================================================
// STORY DATA
// =============================================================================
//
// A story is a fixed, directed graph of nodes authored as data. Each node
// holds narrative text and an ordered list of choices. A choice either points
// at another node (nextNodeId) or, when nextNodeId is absent, ends the
// adventure with the current node's text as the outcome.
//
// JSON Schema (YAML uses the same field names):
// ---------------------------------------------
// {
//   "title": "Forbidden Forest",
//   "rootId": 1,
//   "accent": "#1E88E5",
//   "messages": {"success": "...", "failure": "...", "complete": "...", "invalid": "..."},
//   "nodes": [
//     {"id": 1, "story": "...", "choices": [
//       {"title": "...", "description": "...", "isSuccessful": true, "nextNodeId": 2}
//     ]},
//     {"id": 2, "story": "...", "isEndStep": true}
//   ]
// }
//
// Graph rules (checked by Validate):
// ----------------------------------
// - node ids are unique and positive
// - rootId names an existing node
// - every nextNodeId names an existing node
// - an end step has no choices

// Definition is a complete story as read from a story file.
type Definition struct {
	Title    string   `json:"title" yaml:"title" validate:"required"`
	RootID   int      `json:"rootId" yaml:"rootId" validate:"gt=0"`
	Accent   string   `json:"accent,omitempty" yaml:"accent,omitempty" validate:"omitempty,hexrgb"`
	Messages Messages `json:"messages" yaml:"messages"`
	Nodes    []Node   `json:"nodes" yaml:"nodes" validate:"required,min=1,dive"`
}

// Messages holds the player-facing text shown around outcomes.
type Messages struct {
	Success  string `json:"success,omitempty" yaml:"success,omitempty"`   // Banner title after a successful ending
	Failure  string `json:"failure,omitempty" yaml:"failure,omitempty"`   // Banner title after a failed ending
	Complete string `json:"complete,omitempty" yaml:"complete,omitempty"` // Shown when choosing after the end
	Invalid  string `json:"invalid,omitempty" yaml:"invalid,omitempty"`   // Shown for an unavailable choice
}

// DefaultMessages are used for any message a story leaves empty.
var DefaultMessages = Messages{
	Success:  "Quest Complete!",
	Failure:  "Quest Failed",
	Complete: "Your quest is complete",
	Invalid:  "Invalid choice selected",
}

// withDefaults fills empty messages from DefaultMessages.
func (m Messages) withDefaults() Messages {
	if m.Success == "" {
		m.Success = DefaultMessages.Success
	}
	if m.Failure == "" {
		m.Failure = DefaultMessages.Failure
	}
	if m.Complete == "" {
		m.Complete = DefaultMessages.Complete
	}
	if m.Invalid == "" {
		m.Invalid = DefaultMessages.Invalid
	}
	return m
}

// Node is a single narrative beat with its available choices.
type Node struct {
	ID        int      `json:"id" yaml:"id" validate:"gt=0"`
	Story     string   `json:"story" yaml:"story" validate:"required"`
	Choices   []Choice `json:"choices,omitempty" yaml:"choices,omitempty" validate:"max=9,dive"` // Keys 1-9 pick a choice
	IsEndStep bool     `json:"isEndStep,omitempty" yaml:"isEndStep,omitempty"`
}

// HasChoices returns true if the node offers at least one choice.
func (n Node) HasChoices() bool {
	return len(n.Choices) > 0
}

// clone returns a copy of the node that shares no memory with n.
func (n Node) clone() Node {
	if n.Choices == nil {
		return n
	}
	choices := make([]Choice, len(n.Choices))
	for i, c := range n.Choices {
		if next, ok := c.Next(); ok {
			c.NextNodeID = NodeRef(next)
		}
		choices[i] = c
	}
	n.Choices = choices
	return n
}

// Choice is a selectable option on a node.
type Choice struct {
	Title        string `json:"title" yaml:"title" validate:"required"`
	Description  string `json:"description" yaml:"description"`
	IsSuccessful bool   `json:"isSuccessful" yaml:"isSuccessful"`
	NextNodeID   *int   `json:"nextNodeId,omitempty" yaml:"nextNodeId,omitempty"`
}

// Next returns the id of the node this choice leads to.
// ok is false when the choice ends the adventure on the current node.
func (c Choice) Next() (id int, ok bool) {
	if c.NextNodeID == nil {
		return 0, false
	}
	return *c.NextNodeID, true
}

// NodeRef returns a pointer suitable for Choice.NextNodeID.
func NodeRef(id int) *int {
	return &id
}
