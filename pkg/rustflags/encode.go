package rustflags

import (
	"io"
	"strings"
)

// Expand returns the tokens of flags, in order.
func Expand(flags ...Flag) []string {
	var args []string
	for _, f := range flags {
		args = append(args, f.Args()...)
	}
	return args
}

// Encode joins the tokens of flags with Separator.
//
// Example:
//
//	rustflags.Encode(rustflags.Cfg{Key: "foo"}, rustflags.Z{Option: "y"})
//	// "--cfg\x1ffoo\x1f-Zy"
//
// A value made of a single empty token encodes to "", which decodes to no
// tokens at all.
func Encode(flags ...Flag) string {
	return strings.Join(Expand(flags...), string(Separator))
}

// Encoder writes flags as an encoded value to an io.Writer.
//
// Writes are unbuffered. Separators are written between tokens, never after
// the last one.
type Encoder struct {
	w       io.Writer
	started bool
}

// NewEncoder creates an encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the tokens of f.
func (e *Encoder) Encode(f Flag) error {
	for tok := range f.All() {
		if err := e.EncodeToken(tok); err != nil {
			return err
		}
	}
	return nil
}

// EncodeToken writes one raw token.
func (e *Encoder) EncodeToken(tok string) error {
	buf := make([]byte, 0, len(tok)+1)
	if e.started {
		buf = append(buf, Separator)
	}
	buf = append(buf, tok...)
	e.started = true

	_, err := e.w.Write(buf)
	return err
}
