package rustflags

import (
	"iter"
	"strings"
)

// TokenReader yields tokens one at a time. *Decoder implements it.
type TokenReader interface {
	Next() (string, bool)
}

// Classifier groups tokens into flags.
//
// Like Decoder it is forward-only and single pass. A flag name that takes
// a separate value (`--cfg`, bare `-Z`) always consumes the following
// token, even when that token is itself a flag name.
type Classifier struct {
	r TokenReader
}

// NewClassifier creates a classifier reading tokens from r.
func NewClassifier(r TokenReader) *Classifier {
	return &Classifier{r: r}
}

// Parse decodes and classifies an encoded flags value lazily.
func Parse(encoded string) *Classifier {
	return NewClassifier(NewDecoder(encoded))
}

// ParseAll decodes and classifies an encoded flags value eagerly.
func ParseAll(encoded string) []Flag {
	return Parse(encoded).Collect()
}

// Classify classifies already split tokens eagerly.
func Classify(tokens []string) []Flag {
	return NewClassifier(&sliceReader{tokens: tokens}).Collect()
}

// Next returns the next flag. The second result is false once the tokens
// are exhausted.
func (c *Classifier) Next() (Flag, bool) {
	tok, ok := c.r.Next()
	if !ok {
		return nil, false
	}

	switch {
	case tok == cfgFlag:
		value, ok := c.r.Next()
		if !ok {
			return Other{Tokens: []string{tok}}, true
		}
		return newCfg(value), true

	case strings.HasPrefix(tok, zFlag):
		if opt := tok[len(zFlag):]; opt != "" {
			return Z{Option: opt}, true
		}
		opt, ok := c.r.Next()
		if !ok {
			return Other{Tokens: []string{tok}}, true
		}
		return Z{Option: opt}, true
	}

	return Other{Tokens: []string{tok}}, true
}

// All returns the remaining flags as a sequence. Ranging over it consumes
// the classifier.
func (c *Classifier) All() iter.Seq[Flag] {
	return func(yield func(Flag) bool) {
		for {
			f, ok := c.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Collect returns the remaining flags as a slice.
func (c *Classifier) Collect() []Flag {
	var flags []Flag
	for f := range c.All() {
		flags = append(flags, f)
	}
	return flags
}

type sliceReader struct {
	tokens []string
	pos    int
}

func (s *sliceReader) Next() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}
