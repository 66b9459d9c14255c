package rustflags

import "unicode/utf8"

// Env is an environment variable as read by LookupEnv.
type Env struct {
	Name    string
	Raw     string
	Present bool // false when the variable is unset
}

// LookupEnv reads the named variable.
//
// An unset variable is not an error: Present is false and Flags yields
// nothing. A value that is not valid UTF-8 returns an *EnvError.
func LookupEnv(name string, opts ...Option) (Env, error) {
	cfg := newConfig(opts)

	raw, ok := cfg.lookup(name)
	if !ok {
		cfg.logger.Debug("encoded flags not set", "var", name)
		return Env{Name: name}, nil
	}

	if !utf8.ValidString(raw) {
		return Env{}, &EnvError{Name: name, Offset: invalidOffset(raw)}
	}

	cfg.logger.Debug("read encoded flags", "var", name, "bytes", len(raw))
	return Env{Name: name, Raw: raw, Present: true}, nil
}

// FromEnv reads and classifies CARGO_ENCODED_RUSTFLAGS.
func FromEnv(opts ...Option) (*Classifier, error) {
	env, err := LookupEnv(EnvRustFlags, opts...)
	if err != nil {
		return nil, err
	}
	return env.Flags(), nil
}

// Flags classifies the value. Unset and empty variables both yield no
// flags.
func (e Env) Flags() *Classifier {
	return Parse(e.Raw)
}

func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(s)
}
