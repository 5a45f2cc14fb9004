package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexiconOf(t *testing.T, words ...string) *Lexicon {
	t.Helper()
	l := New()
	for _, w := range words {
		require.True(t, l.Add(w))
	}
	return l
}

func TestMatchPatternFindSemantics(t *testing.T) {
	l := lexiconOf(t, "apple", "maple", "ample")

	got, err := l.MatchPattern("p.*l")
	require.NoError(t, err)
	assert.Equal(t, []string{"ample", "apple", "maple"}, got, "p before l appears somewhere in all three")

	got, err = l.MatchPattern("^ap")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple"}, got)

	got, err = l.MatchPattern("le$")
	require.NoError(t, err)
	assert.Equal(t, []string{"ample", "apple", "maple"}, got)

	got, err = l.MatchPattern("xyz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMatchPatternIsCaseInsensitive(t *testing.T) {
	l := lexiconOf(t, "apple")

	got, err := l.MatchPattern("APP")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple"}, got)
}

func TestMatchPatternInvalid(t *testing.T) {
	l := lexiconOf(t, "apple")

	_, err := l.MatchPattern("[unclosed")
	require.ErrorIs(t, err, ErrInvalidPattern)

	// The failure is local: the lexicon still answers queries.
	assert.True(t, l.ContainsWord("apple"))
	assert.Equal(t, 1, l.Size())
}

func TestSuggestCorrections(t *testing.T) {
	l := lexiconOf(t, "cat", "car", "bat", "cot", "cart", "at")

	assert.ElementsMatch(t, []string{"cat", "car", "bat", "cot"}, l.SuggestCorrections("cat", 1),
		"equal length within one substitution; cart and at differ in length")
	assert.Equal(t, []string{"cat"}, l.SuggestCorrections("cat", 0))
	assert.ElementsMatch(t, []string{"bat", "car", "cat", "cot"}, l.SuggestCorrections("cat", 3),
		"a generous budget still only admits equal-length words")
}

func TestSuggestCorrectionsResultsAreSorted(t *testing.T) {
	l := lexiconOf(t, "cot", "cat", "bat")

	assert.Equal(t, []string{"bat", "cat", "cot"}, l.SuggestCorrections("cat", 1))
}

func TestSuggestCorrectionsEdgeCases(t *testing.T) {
	l := lexiconOf(t, "cat", "car")

	assert.Empty(t, l.SuggestCorrections("cat", -1), "negative budget yields nothing")
	assert.Empty(t, l.SuggestCorrections("catalogue", 9), "target deeper than the trie")
	assert.Empty(t, l.SuggestCorrections("", 2), "no empty word stored")

	require.True(t, l.Add(""))
	assert.Equal(t, []string{""}, l.SuggestCorrections("", 0))
}

func TestSuggestCorrectionsPrunesByBudget(t *testing.T) {
	l := lexiconOf(t, "aaaa", "aaab", "abab", "bbbb")

	assert.ElementsMatch(t, []string{"aaaa", "aaab"}, l.SuggestCorrections("aaaa", 1))
	assert.ElementsMatch(t, []string{"aaaa", "aaab", "abab"}, l.SuggestCorrections("aaaa", 2))
	assert.ElementsMatch(t, []string{"aaaa", "aaab", "abab", "bbbb"}, l.SuggestCorrections("aaaa", 4))
}
