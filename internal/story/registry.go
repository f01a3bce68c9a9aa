package story

import (
	"fmt"
	"slices"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/forestquest/data"
)

// defaultAccent is the choice button color when a story sets none.
const defaultAccent = "#1E88E5"

// Registry holds a validated story and indexes its nodes by id.
// Nodes are copied in and out, so the graph cannot change after validation.
type Registry struct {
	def   Definition
	nodes map[int]Node
	ids   []int
}

// NewRegistry validates a definition and builds a registry from it.
func NewRegistry(def Definition) (*Registry, error) {
	if err := Validate(&def); err != nil {
		return nil, fmt.Errorf("invalid story %q: %w", def.Title, err)
	}

	registry := &Registry{
		def:   def,
		nodes: make(map[int]Node, len(def.Nodes)),
		ids:   make([]int, 0, len(def.Nodes)),
	}
	for _, n := range def.Nodes {
		registry.nodes[n.ID] = n.clone()
		registry.ids = append(registry.ids, n.ID)
	}
	sort.Ints(registry.ids)
	registry.def.Nodes = nil

	return registry, nil
}

// LoadRegistry loads and creates a registry from the embedded default story.
func LoadRegistry() (*Registry, error) {
	def, err := Load[Definition](data.DefaultStory)
	if err != nil {
		return nil, err
	}
	return NewRegistry(def)
}

// LoadRegistryFile loads and creates a registry from a story file on disk.
func LoadRegistryFile(path string) (*Registry, error) {
	def, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(def)
}

// OpenRegistry loads a story by name. An empty name selects the default
// story, a name matching an embedded story file loads that file, and
// anything else is read from disk.
func OpenRegistry(name string) (*Registry, error) {
	if name == "" {
		return LoadRegistry()
	}

	embedded, err := data.StoryNames()
	if err != nil {
		return nil, err
	}
	if slices.Contains(embedded, name) {
		def, err := Load[Definition](name)
		if err != nil {
			return nil, err
		}
		return NewRegistry(def)
	}

	return LoadRegistryFile(name)
}

// MustLoadRegistry loads the embedded default story, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the node with the given id.
func (r *Registry) GetByID(id int) (Node, bool) {
	n, ok := r.nodes[id]
	return n.clone(), ok
}

// RootID returns the id of the node every adventure starts at.
func (r *Registry) RootID() int {
	return r.def.RootID
}

// Title returns the story title.
func (r *Registry) Title() string {
	return r.def.Title
}

// Messages returns the story's outcome messages with defaults applied.
func (r *Registry) Messages() Messages {
	return r.def.Messages.withDefaults()
}

// AccentColor returns the color used for choice buttons.
func (r *Registry) AccentColor() tcell.Color {
	if r.def.Accent == "" {
		return MustParseHexColor(defaultAccent)
	}
	// Validated in NewRegistry.
	return MustParseHexColor(r.def.Accent)
}

// All returns all nodes in id order.
func (r *Registry) All() []Node {
	nodes := make([]Node, 0, len(r.ids))
	for _, id := range r.ids {
		nodes = append(nodes, r.nodes[id].clone())
	}
	return nodes
}

// Count returns the number of nodes in the story.
func (r *Registry) Count() int {
	return len(r.nodes)
}
