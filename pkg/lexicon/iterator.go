package lexicon

import "iter"

// frame is one ancestor on the iteration path together with the index of its
// next unvisited child.
type frame struct {
	n    *node
	next int
}

// Iterator walks every stored word in strict alphabetical order. Traversal
// state lives in an explicit frame stack rather than on the call stack, so a
// paused iteration can be resumed by any later Next call and no live node
// references ever escape the lexicon.
//
// Mutating the lexicon invalidates its outstanding iterators.
type Iterator struct {
	stack   []frame
	prefix  []byte
	started bool
}

// Iterator returns a fresh traversal positioned before the first word. Each
// call restarts from the smallest word.
func (l *Lexicon) Iterator() *Iterator {
	return &Iterator{stack: []frame{{n: l.root}}}
}

// Next returns the next word in alphabetical order, or false once the
// traversal has returned to the root with no siblings left. A node that both
// ends a word and continues into longer words is yielded once before its
// subtree is entered.
func (it *Iterator) Next() (string, bool) {
	if !it.started {
		it.started = true
		// The root carries the empty word's terminal flag.
		if it.stack[0].n.terminal {
			return "", true
		}
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.next < len(top.n.children) {
			child := top.n.children[top.next]
			top.next++
			it.stack = append(it.stack, frame{n: child})
			it.prefix = append(it.prefix, child.label)
			if child.terminal {
				return string(it.prefix), true
			}
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
		if len(it.prefix) > 0 {
			it.prefix = it.prefix[:len(it.prefix)-1]
		}
	}
	return "", false
}

// Words returns a lazy, restartable sequence over the stored words in
// alphabetical order. Every range statement starts a fresh traversal.
func (l *Lexicon) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		it := l.Iterator()
		for w, ok := it.Next(); ok; w, ok = it.Next() {
			if !yield(w) {
				return
			}
		}
	}
}
