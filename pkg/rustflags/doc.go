// Package rustflags decodes and classifies encoded compiler flags.
//
// Cargo hands build scripts the flags it will pass to rustc in a single
// environment variable, CARGO_ENCODED_RUSTFLAGS. The flags are joined with
// the ASCII unit separator (0x1F), a byte that never appears inside a flag:
//
//	"--cfg\x1ffeature=\"foo\"\x1f-Zsanitizer=address"
//
// This package splits that value into tokens, groups the tokens into
// logical flags and classifies each flag.
//
// # Flags
//
// Three kinds of flag are produced:
//
//	Cfg{Key, Value, HasValue}  // --cfg name  |  --cfg name=value
//	Z{Option}                  // -Zoption    |  -Z option
//	Other{Tokens}              // anything else, kept verbatim
//
// Every flag can be expanded back into the tokens that produce it, so a
// filtered subset can be forwarded to another compiler invocation:
//
//	for f := range rustflags.Parse(encoded).All() {
//		if _, ok := f.(rustflags.Z); ok {
//			args = append(args, f.Args()...)
//		}
//	}
//
// # Basic Usage
//
// Reading the environment:
//
//	flags, err := rustflags.FromEnv()
//	if err != nil {
//		return err // the variable holds invalid UTF-8
//	}
//	for f := range flags.All() {
//		if z, ok := f.(rustflags.Z); ok && z.Option == "sanitizer=address" {
//			// ...
//		}
//	}
//
// Decoding a value directly:
//
//	dec := rustflags.NewDecoder(encoded)
//	for tok := range dec.All() {
//		fmt.Println(tok)
//	}
//
// # Laziness
//
// Decoder and Classifier are forward-only and single pass. Flags are
// classified as the caller advances, so stopping at the first match does
// not pay for the rest of the value. Use ParseAll for an eager slice.
//
// # Errors
//
// Decoding and classification never fail: malformed, empty or truncated
// input always maps to some sequence of flags. The only error is reading
// an environment variable whose value is not valid UTF-8, reported as an
// *EnvError wrapping ErrInvalidUnicode.
package rustflags
