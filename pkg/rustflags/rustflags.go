package rustflags

const (
	// Separator delimits tokens in an encoded flags value.
	Separator = '\x1f'

	// EnvRustFlags holds the flags for rustc invocations (Cargo 1.55+).
	EnvRustFlags = "CARGO_ENCODED_RUSTFLAGS"

	// EnvRustdocFlags holds the flags for rustdoc invocations (Cargo 1.55+).
	EnvRustdocFlags = "CARGO_ENCODED_RUSTDOCFLAGS"
)

// Flag-name tokens with a dedicated variant.
const (
	cfgFlag = "--cfg"
	zFlag   = "-Z"
)
