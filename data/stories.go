package data

import (
	"fmt"
	"io/fs"
)

// DefaultStory is the embedded story played when no story file is configured.
const DefaultStory = "forest.json"

// StoryNames returns the names of all embedded story files.
func StoryNames() ([]string, error) {
	names, err := fs.Glob(dataFS, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded stories: %w", err)
	}
	return names, nil
}
