package assets

import (
	"testing"

	"github.com/calyptra/wordforge/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWordsLoad(t *testing.T) {
	l := lexicon.New()
	_, err := l.AddAll(DefaultWords())

	require.NoError(t, err)
	assert.Greater(t, l.Size(), 400)
	assert.True(t, l.ContainsWord("quiz"))
	assert.True(t, l.ContainsWord("cat"))
}

func TestMetalWordsLoad(t *testing.T) {
	l := lexicon.New()
	_, err := l.AddAll(MetalWords())

	require.NoError(t, err)
	assert.True(t, l.ContainsWord("iron"))
	assert.True(t, l.ContainsWord("steel"))
	assert.False(t, l.ContainsWord("cat"))
}
