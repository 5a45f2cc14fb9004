package lexicon

import (
	"fmt"
	"regexp"
)

// MatchPattern compiles expr as a case-insensitive regular expression and
// returns every stored word the pattern matches anywhere in the string (find
// semantics, not full match). Anchored forms like "^pre" and "fix$" work as
// expected. Results are distinct and come back in alphabetical order.
//
// A malformed pattern returns ErrInvalidPattern and leaves the lexicon
// untouched; the failure is local to the call.
func (l *Lexicon) MatchPattern(expr string) ([]string, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	var matches []string
	for word := range l.Words() {
		if re.MatchString(word) {
			matches = append(matches, word)
		}
	}
	return matches, nil
}

// SuggestCorrections returns every stored word whose length equals target's
// and whose per-position substitution count is at most maxDistance. Only
// substitutions count, never insertions or deletions. The trie is walked in
// lockstep with target and a branch is abandoned as soon as the remaining
// mismatch budget would go negative, so equal-length subtrees are never
// enumerated wholesale. Results are distinct and alphabetical.
//
// A negative maxDistance, or a target longer than the deepest stored word,
// yields no candidates.
func (l *Lexicon) SuggestCorrections(target string, maxDistance int) []string {
	var out []string
	if maxDistance < 0 {
		return out
	}
	prefix := make([]byte, 0, len(target))
	correct(l.root, target, maxDistance, prefix, &out)
	return out
}

// correct extends prefix through n's children, spending one budget unit per
// position that differs from target.
func correct(n *node, target string, budget int, prefix []byte, out *[]string) {
	depth := len(prefix)
	if depth == len(target) {
		if n.terminal {
			*out = append(*out, string(prefix))
		}
		return
	}
	for _, child := range n.children {
		cost := 0
		if child.label != target[depth] {
			cost = 1
		}
		if budget < cost {
			continue
		}
		correct(child, target, budget-cost, append(prefix, child.label), out)
	}
}
