package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/epithet-ssh/rustflags/pkg/rustflags"
)

// ArgsCLI re-expands flags, optionally keeping only some kinds, so they can
// be forwarded to another compiler invocation.
type ArgsCLI struct {
	Kind   []string `help:"Only keep flags of this kind: cfg, z or other (repeatable)" short:"k"`
	Encode bool     `help:"Print a single encoded value instead of one argument per line" short:"e"`
}

func (a *ArgsCLI) Run(logger *slog.Logger, env rustflags.Env, w io.Writer) error {
	flags := env.Flags().All()
	if len(a.Kind) > 0 {
		kinds := make([]rustflags.Kind, 0, len(a.Kind))
		for _, s := range a.Kind {
			k, ok := rustflags.ParseKind(s)
			if !ok {
				return fmt.Errorf("unknown flag kind %q", s)
			}
			kinds = append(kinds, k)
		}
		flags = rustflags.Filter(flags, rustflags.OfKind(kinds...))
	}

	if a.Encode {
		enc := rustflags.NewEncoder(w)
		n := 0
		for f := range flags {
			if err := enc.Encode(f); err != nil {
				return fmt.Errorf("failed to write flags: %w", err)
			}
			n++
		}
		logger.Debug("encoded flags", "count", n)
		return nil
	}

	for f := range flags {
		for tok := range f.All() {
			if _, err := fmt.Fprintln(w, tok); err != nil {
				return err
			}
		}
	}
	return nil
}
