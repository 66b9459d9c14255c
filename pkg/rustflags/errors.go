package rustflags

import (
	"errors"
	"fmt"
)

// ErrInvalidUnicode indicates an environment variable whose value is not
// valid UTF-8.
var ErrInvalidUnicode = errors.New("rustflags: value is not valid unicode")

// EnvError provides detail about an unreadable environment variable.
type EnvError struct {
	Name   string // Variable name
	Offset int    // Byte offset of the first invalid sequence
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("rustflags: %s is not valid unicode at byte %d", e.Name, e.Offset)
}

func (e *EnvError) Unwrap() error {
	return ErrInvalidUnicode
}
