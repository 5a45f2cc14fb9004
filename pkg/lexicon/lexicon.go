/*
Package lexicon implements a mutable, ordered word set stored as a trie.

Words sharing a prefix share nodes, children are kept in alphabetical order,
and branches left without any word after a removal are pruned immediately.
The structure supports ordered iteration, uniform random sampling, pattern
search and bounded-distance correction lookups.

The lexicon is case sensitive internally: "Cat" and "cat" are distinct
entries. Case normalization is the caller's job; AddAll and LoadFile apply
the conventional lower-casing for line-based word sources.

A Lexicon is not safe for concurrent use. A host that shares one across
goroutines must serialize access itself, every operation assumes exclusive
access for its duration.
*/
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrEmptyLexicon is returned by RandomWord when no words are stored.
	ErrEmptyLexicon = errors.New("lexicon: no words stored")
	// ErrInvalidPattern is returned by MatchPattern for unparseable patterns.
	ErrInvalidPattern = errors.New("lexicon: invalid pattern")
	// ErrSourceUnavailable is returned by LoadFile when the word source
	// cannot be opened at all, as opposed to a readable source that simply
	// contains no usable words.
	ErrSourceUnavailable = errors.New("lexicon: word source unavailable")
)

// node is one prefix position. children stay sorted by label at all times;
// a node with no children and terminal unset must not survive any mutation.
// Nodes hold no parent references, operations that need ancestry carry an
// explicit path stack instead.
type node struct {
	label    byte
	terminal bool
	children []*node
}

// child returns the child labeled c, or nil.
func (n *node) child(c byte) *node {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].label >= c })
	if i < len(n.children) && n.children[i].label == c {
		return n.children[i]
	}
	return nil
}

// addChild inserts a child labeled c at its alphabetical position and
// returns it. The existing child is returned when one is already present.
func (n *node) addChild(c byte) *node {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].label >= c })
	if i < len(n.children) && n.children[i].label == c {
		return n.children[i]
	}
	child := &node{label: c}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child
}

// removeChild drops the child labeled c together with its whole subtree.
func (n *node) removeChild(c byte) {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].label >= c })
	if i < len(n.children) && n.children[i].label == c {
		n.children = append(n.children[:i], n.children[i+1:]...)
	}
}

// leaf reports whether the node has no children.
func (n *node) leaf() bool { return len(n.children) == 0 }

// Lexicon is an ordered set of words stored as a trie. The zero value is not
// usable; construct with New or NewFromFile. The Lexicon exclusively owns its
// node graph and never hands out node references.
type Lexicon struct {
	root *node
	size int
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{root: &node{}}
}

// NewFromFile returns a lexicon bulk-loaded from a line-based word file,
// lower-casing each line. The partially loaded lexicon is returned together
// with the error when reading fails.
func NewFromFile(path string) (*Lexicon, error) {
	l := New()
	if _, err := l.LoadFile(path); err != nil {
		return l, err
	}
	return l, nil
}

// Size returns the number of stored words.
func (l *Lexicon) Size() int { return l.size }

// walk follows s from the root and returns the final node, or nil when the
// path does not exist.
func (l *Lexicon) walk(s string) *node {
	n := l.root
	for i := 0; i < len(s); i++ {
		if n = n.child(s[i]); n == nil {
			return nil
		}
	}
	return n
}

// ContainsWord reports whether word is stored. Absence is a negative result,
// not an error.
func (l *Lexicon) ContainsWord(word string) bool {
	n := l.walk(word)
	return n != nil && n.terminal
}

// ContainsPrefix reports whether any stored word starts with prefix. Every
// stored word is also a prefix of itself.
func (l *Lexicon) ContainsPrefix(prefix string) bool {
	return l.walk(prefix) != nil
}

// Add inserts word, creating prefix nodes as needed, and reports whether the
// lexicon changed. Adding an already stored word returns false and mutates
// nothing. The empty string is a valid word, stored on the root.
func (l *Lexicon) Add(word string) bool {
	if l.ContainsWord(word) {
		return false
	}
	n := l.root
	for i := 0; i < len(word); i++ {
		n = n.addChild(word[i])
	}
	n.terminal = true
	l.size++
	return true
}

// Remove deletes word and reports whether it was present. After unmarking
// the final node, every ancestor that has become a childless non-word is
// pruned, walking the explicit path stack back toward the root and stopping
// at the first node that still ends a word or carries other branches.
func (l *Lexicon) Remove(word string) bool {
	path := make([]*node, 0, len(word)+1)
	n := l.root
	path = append(path, n)
	for i := 0; i < len(word); i++ {
		if n = n.child(word[i]); n == nil {
			return false
		}
		path = append(path, n)
	}
	if !n.terminal {
		return false
	}
	n.terminal = false
	for i := len(path) - 1; i > 0; i-- {
		cur := path[i]
		if cur.terminal || !cur.leaf() {
			break
		}
		path[i-1].removeChild(cur.label)
	}
	l.size--
	return true
}

// AddAll reads words from r one line at a time, trimming whitespace and
// lower-casing before insert. Blank lines and duplicates are skipped, never
// fatal. The count of lines processed is returned, not the count of new
// words. Reading is incremental: when the reader fails mid-stream the words
// inserted so far are kept and the partial line count is returned with the
// error.
func (l *Lexicon) AddAll(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	lines := 0
	for sc.Scan() {
		lines++
		word := strings.ToLower(strings.TrimSpace(sc.Text()))
		if word == "" {
			continue
		}
		l.Add(word)
	}
	if err := sc.Err(); err != nil {
		return lines, fmt.Errorf("reading word list: %w", err)
	}
	return lines, nil
}

// LoadFile bulk-loads the line-based word file at path. An unopenable file
// yields ErrSourceUnavailable, which keeps "no such source" distinct from a
// readable source that held zero valid words.
func (l *Lexicon) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	lines, err := l.AddAll(f)
	if err != nil {
		return lines, err
	}
	log.Debugf("Loaded %d lines from %s (%d words stored)", lines, path, l.size)
	return lines, nil
}

// RandomWord returns a uniformly random stored word by drawing a random
// ordinal into the alphabetical sequence. Calling it on an empty lexicon
// yields ErrEmptyLexicon rather than a silent empty string.
func (l *Lexicon) RandomWord() (string, error) {
	if l.size == 0 {
		return "", ErrEmptyLexicon
	}
	ordinal := rand.IntN(l.size)
	it := l.Iterator()
	word := ""
	for i := 0; i <= ordinal; i++ {
		word, _ = it.Next()
	}
	return word, nil
}
