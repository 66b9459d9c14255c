package rustflags

import (
	"iter"
	"slices"
	"strings"
)

// Flag is one logical compiler flag. It is one of Cfg, Z or Other.
type Flag interface {
	// Kind reports which variant the flag is.
	Kind() Kind

	// Args returns the tokens that reproduce the flag on a command line.
	Args() []string

	// All returns the same tokens as Args, lazily.
	All() iter.Seq[string]

	// String returns the tokens joined by a single space.
	String() string

	isFlag()
}

// Kind identifies a Flag variant.
type Kind int

const (
	KindOther Kind = iota
	KindCfg
	KindZ
)

func (k Kind) String() string {
	switch k {
	case KindCfg:
		return "cfg"
	case KindZ:
		return "z"
	default:
		return "other"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "cfg":
		return KindCfg, true
	case "z":
		return KindZ, true
	case "other":
		return KindOther, true
	}
	return KindOther, false
}

// Cfg is `--cfg KEY` or `--cfg KEY=VALUE`.
//
// Value is kept verbatim, so `--cfg feature="foo"` has Value `"foo"`
// including the quotes.
type Cfg struct {
	Key      string
	Value    string
	HasValue bool
}

func (Cfg) Kind() Kind { return KindCfg }

func (c Cfg) Args() []string {
	if c.HasValue {
		return []string{cfgFlag, c.Key + "=" + c.Value}
	}
	return []string{cfgFlag, c.Key}
}

func (c Cfg) All() iter.Seq[string] { return slices.Values(c.Args()) }

func (c Cfg) String() string { return strings.Join(c.Args(), " ") }

func (Cfg) isFlag() {}

// Z is an unstable option, `-ZOPTION` or `-Z OPTION`. Both spellings
// produce the same value.
type Z struct {
	Option string
}

func (Z) Kind() Kind { return KindZ }

// Args always uses the single-token spelling, except for an empty option:
// a bare "-Z" would read back as a dangling flag name, so that case keeps
// two tokens.
func (z Z) Args() []string {
	if z.Option == "" {
		return []string{zFlag, ""}
	}
	return []string{zFlag + z.Option}
}

func (z Z) All() iter.Seq[string] { return slices.Values(z.Args()) }

func (z Z) String() string { return strings.Join(z.Args(), " ") }

func (Z) isFlag() {}

// Other is any flag without a dedicated variant. Tokens holds the original
// tokens unmodified; it is never empty for flags produced by a Classifier.
type Other struct {
	Tokens []string
}

func (Other) Kind() Kind { return KindOther }

func (o Other) Args() []string { return slices.Clone(o.Tokens) }

func (o Other) All() iter.Seq[string] { return slices.Values(o.Tokens) }

func (o Other) String() string { return strings.Join(o.Tokens, " ") }

func (Other) isFlag() {}

// newCfg splits a --cfg value on its first '='.
func newCfg(value string) Cfg {
	key, val, found := strings.Cut(value, "=")
	return Cfg{Key: key, Value: val, HasValue: found}
}
