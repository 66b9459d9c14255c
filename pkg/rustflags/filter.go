package rustflags

import "iter"

// Filter returns the flags of seq for which keep returns true.
func Filter(seq iter.Seq[Flag], keep func(Flag) bool) iter.Seq[Flag] {
	return func(yield func(Flag) bool) {
		for f := range seq {
			if keep(f) && !yield(f) {
				return
			}
		}
	}
}

// OfKind keeps flags whose kind is one of kinds.
func OfKind(kinds ...Kind) func(Flag) bool {
	return func(f Flag) bool {
		for _, k := range kinds {
			if f.Kind() == k {
				return true
			}
		}
		return false
	}
}

// HasCfg reports whether seq contains `--cfg key`, with or without a value.
func HasCfg(seq iter.Seq[Flag], key string) bool {
	for f := range seq {
		if c, ok := f.(Cfg); ok && c.Key == key {
			return true
		}
	}
	return false
}

// CfgValues returns the values given for key, in order. `--cfg key` without
// a value is not included.
func CfgValues(seq iter.Seq[Flag], key string) []string {
	var values []string
	for f := range seq {
		if c, ok := f.(Cfg); ok && c.Key == key && c.HasValue {
			values = append(values, c.Value)
		}
	}
	return values
}

// HasZ reports whether seq contains `-Z option`. option must match exactly,
// e.g. "sanitizer=address".
func HasZ(seq iter.Seq[Flag], option string) bool {
	for f := range seq {
		if z, ok := f.(Z); ok && z.Option == option {
			return true
		}
	}
	return false
}
