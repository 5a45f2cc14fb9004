// Package assets carries the embedded fallback word lists used when no
// dictionary files are configured. The lists are small; real play should
// point the config at a full dictionary.
package assets

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed words_default.txt
var defaultWords []byte

//go:embed metal_default.txt
var metalWords []byte

// DefaultWords streams the built-in general dictionary, one word per line.
func DefaultWords() io.Reader {
	return bytes.NewReader(defaultWords)
}

// MetalWords streams the built-in metal dictionary used for the hammer bonus.
func MetalWords() io.Reader {
	return bytes.NewReader(metalWords)
}
