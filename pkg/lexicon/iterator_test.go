package lexicon

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains a fresh iterator into a slice.
func collect(l *Lexicon) []string {
	var words []string
	for w := range l.Words() {
		words = append(words, w)
	}
	return words
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestIterationIsAlphabetical(t *testing.T) {
	l := New()
	for _, w := range []string{"bee", "bear", "ant"} {
		require.True(t, l.Add(w))
	}

	assert.Equal(t, []string{"ant", "bear", "bee"}, collect(l))
}

func TestIterationYieldsWordBeforeItsExtensions(t *testing.T) {
	l := New()
	for _, w := range []string{"bees", "be", "bee"} {
		require.True(t, l.Add(w))
	}

	assert.Equal(t, []string{"be", "bee", "bees"}, collect(l))
}

func TestIterationVisitsEveryWordOnce(t *testing.T) {
	l := New()
	words := []string{"a", "ab", "abc", "b", "ba", "cab", "cabs", "z"}
	for _, w := range words {
		require.True(t, l.Add(w))
	}

	got := collect(l)
	require.Len(t, got, len(words))
	seen := make(map[string]bool)
	prev := ""
	for i, w := range got {
		assert.False(t, seen[w], "word %q produced twice", w)
		seen[w] = true
		if i > 0 {
			assert.Less(t, prev, w, "sequence must be strictly increasing")
		}
		prev = w
	}
}

func TestIteratorIsRestartable(t *testing.T) {
	l := New()
	for _, w := range []string{"maple", "ample", "apple"} {
		require.True(t, l.Add(w))
	}

	first := collect(l)
	second := collect(l)
	assert.Equal(t, first, second, "each traversal starts fresh")

	it := l.Iterator()
	w, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "ample", w, "a partially consumed iterator does not disturb new ones")
	assert.Equal(t, first, collect(l))
}

func TestIteratorOnEmptyLexicon(t *testing.T) {
	l := New()

	_, ok := l.Iterator().Next()
	assert.False(t, ok)
	assert.Empty(t, collect(l))
}

func TestIteratorResumesAcrossCalls(t *testing.T) {
	l := New()
	for _, w := range []string{"cot", "cat", "car"} {
		require.True(t, l.Add(w))
	}

	it := l.Iterator()
	for _, want := range []string{"car", "cat", "cot"} {
		got, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok, "an exhausted iterator stays exhausted")
}

func TestWordsStopsEarlyOnBreak(t *testing.T) {
	l := New()
	for _, w := range []string{"one", "two", "three"} {
		require.True(t, l.Add(w))
	}

	var got []string
	for w := range l.Words() {
		got = append(got, w)
		break
	}
	assert.Equal(t, []string{"one"}, got)
}
