package server

import (
	"bytes"
	"testing"

	"github.com/calyptra/wordforge/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// roundtrip feeds the requests through an in-memory server and decodes every
// response it wrote.
func roundtrip(t *testing.T, words *lexicon.Lexicon, reqs ...Request) []Response {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range reqs {
		require.NoError(t, enc.Encode(req))
	}

	var out bytes.Buffer
	srv := NewServerIO(words, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	resps := make([]Response, len(reqs))
	for i := range reqs {
		require.NoError(t, dec.Decode(&resps[i]))
	}
	return resps
}

func testWords(t *testing.T, words ...string) *lexicon.Lexicon {
	t.Helper()
	l := lexicon.New()
	for _, w := range words {
		require.True(t, l.Add(w))
	}
	return l
}

func TestLookupAndPrefix(t *testing.T) {
	l := testWords(t, "cat", "cart")

	resps := roundtrip(t, l,
		Request{ID: "1", Op: OpLookup, Word: "CAT"},
		Request{ID: "2", Op: OpLookup, Word: "ca"},
		Request{ID: "3", Op: OpPrefix, Word: "ca"},
		Request{ID: "4", Op: OpPrefix, Word: "dog"},
	)

	assert.Equal(t, "1", resps[0].ID)
	assert.True(t, resps[0].OK)
	assert.True(t, resps[0].Found, "lookups are case insensitive")
	assert.False(t, resps[1].Found, "prefixes are not words")
	assert.True(t, resps[2].Found)
	assert.False(t, resps[3].Found)
}

func TestMatchOp(t *testing.T) {
	l := testWords(t, "cat", "cut", "cart")

	resps := roundtrip(t, l,
		Request{ID: "1", Op: OpMatch, Pattern: "^c.t$"},
		Request{ID: "2", Op: OpMatch, Pattern: "^c", Limit: 2},
		Request{ID: "3", Op: OpMatch, Pattern: "[bad"},
		Request{ID: "4", Op: OpMatch},
	)

	assert.Equal(t, []string{"cat", "cut"}, resps[0].Words)
	assert.Equal(t, 2, resps[0].Count)
	assert.Len(t, resps[1].Words, 2, "limit clips results")
	assert.False(t, resps[2].OK)
	assert.Contains(t, resps[2].Error, "Invalid pattern")
	assert.False(t, resps[3].OK)
	assert.Contains(t, resps[3].Error, "Missing 'p'")
}

func TestCorrectOp(t *testing.T) {
	l := testWords(t, "cat", "car", "dog")

	resps := roundtrip(t, l,
		Request{ID: "1", Op: OpCorrect, Word: "cat", Distance: 1},
	)

	assert.True(t, resps[0].OK)
	assert.Equal(t, []string{"car", "cat"}, resps[0].Words)
}

func TestRandomAndCount(t *testing.T) {
	resps := roundtrip(t, testWords(t, "only"),
		Request{ID: "1", Op: OpRandom},
		Request{ID: "2", Op: OpCount},
	)
	assert.Equal(t, "only", resps[0].Word)
	assert.Equal(t, 1, resps[1].Count)

	resps = roundtrip(t, lexicon.New(), Request{ID: "1", Op: OpRandom})
	assert.False(t, resps[0].OK)
	assert.Contains(t, resps[0].Error, "empty")
}

func TestAddAndRemoveOps(t *testing.T) {
	l := lexicon.New()

	resps := roundtrip(t, l,
		Request{ID: "1", Op: OpAdd, Word: "Cat"},
		Request{ID: "2", Op: OpAdd, Word: "cat"},
		Request{ID: "3", Op: OpCount},
		Request{ID: "4", Op: OpRemove, Word: "cat"},
		Request{ID: "5", Op: OpRemove, Word: "cat"},
	)

	assert.True(t, resps[0].Found, "first add mutates")
	assert.False(t, resps[1].Found, "duplicate add does not")
	assert.Equal(t, 1, resps[2].Count)
	assert.True(t, resps[3].Found)
	assert.False(t, resps[4].Found)
	assert.Equal(t, 0, l.Size())
}

func TestUnknownOp(t *testing.T) {
	resps := roundtrip(t, lexicon.New(), Request{ID: "1", Op: "frobnicate"})

	assert.False(t, resps[0].OK)
	assert.Contains(t, resps[0].Error, "Unknown op")
	assert.Equal(t, "1", resps[0].ID)
}
