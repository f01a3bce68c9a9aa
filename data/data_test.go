package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryNames(t *testing.T) {
	names, err := StoryNames()
	require.NoError(t, err)
	assert.Contains(t, names, DefaultStory)
}

func TestFSReadsDefaultStory(t *testing.T) {
	content, err := FS().ReadFile(DefaultStory)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
