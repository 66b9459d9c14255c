package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/epithet-ssh/rustflags/pkg/rustflags"
)

// ListCLI prints the classified flags.
type ListCLI struct {
	JSON bool `help:"Output in JSON format" short:"j"`
}

// flagJSON is the JSON form of one flag.
type flagJSON struct {
	Kind   string   `json:"kind"`
	Key    string   `json:"key,omitempty"`
	Value  *string  `json:"value,omitempty"`
	Option *string  `json:"option,omitempty"`
	Args   []string `json:"args"`
}

func toJSON(f rustflags.Flag) flagJSON {
	out := flagJSON{Kind: f.Kind().String(), Args: f.Args()}
	switch f := f.(type) {
	case rustflags.Cfg:
		out.Key = f.Key
		if f.HasValue {
			out.Value = &f.Value
		}
	case rustflags.Z:
		out.Option = &f.Option
	}
	return out
}

func (l *ListCLI) Run(logger *slog.Logger, env rustflags.Env, w io.Writer) error {
	flags := env.Flags().Collect()
	logger.Debug("classified flags", "var", env.Name, "count", len(flags))

	if l.JSON {
		out := make([]flagJSON, 0, len(flags))
		for _, f := range flags {
			out = append(out, toJSON(f))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, f := range flags {
		if _, err := fmt.Fprintf(w, "%-5s %q\n", f.Kind(), f.Args()); err != nil {
			return err
		}
	}
	return nil
}
