package rustflags

import (
	"iter"
	"strings"
)

// Decoder splits an encoded flags value into tokens.
//
// A Decoder is forward-only and single pass. Once Next reports false it
// keeps reporting false.
type Decoder struct {
	rest string
	done bool
}

// NewDecoder creates a decoder over encoded.
//
// An empty value decodes to zero tokens, not to one empty token.
func NewDecoder(encoded string) *Decoder {
	return &Decoder{
		rest: encoded,
		done: encoded == "",
	}
}

// Next returns the next token. The second result is false once the input
// is exhausted.
//
// Tokens are returned byte for byte. Empty tokens, including the one after
// a trailing separator, are preserved.
func (d *Decoder) Next() (string, bool) {
	if d.done {
		return "", false
	}

	i := strings.IndexByte(d.rest, Separator)
	if i < 0 {
		tok := d.rest
		d.rest = ""
		d.done = true
		return tok, true
	}

	tok := d.rest[:i]
	d.rest = d.rest[i+1:]
	return tok, true
}

// All returns the remaining tokens as a sequence. The sequence shares the
// decoder's position: ranging over it consumes the decoder.
func (d *Decoder) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := d.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Split decodes encoded eagerly.
func Split(encoded string) []string {
	if encoded == "" {
		return nil
	}
	return strings.Split(encoded, string(Separator))
}
