package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/epithet-ssh/rustflags/pkg/rustflags"
)

// HasCLI checks for a single flag. Exactly one of --cfg and -Z is required.
type HasCLI struct {
	Cfg string `help:"cfg to look for, KEY or KEY=VALUE" xor:"flag" required:""`
	Z   string `name:"unstable" short:"Z" help:"Unstable option to look for, e.g. sanitizer=address" xor:"flag" required:""`
}

func (h *HasCLI) Run(logger *slog.Logger, env rustflags.Env, _ io.Writer) error {
	match, err := h.matcher()
	if err != nil {
		return err
	}

	for f := range env.Flags().All() {
		if match(f) {
			logger.Info("flag present", "flag", f.String())
			return nil
		}
	}
	logger.Info("flag absent", "var", env.Name)
	return errAbsent
}

func (h *HasCLI) matcher() (func(rustflags.Flag) bool, error) {
	switch {
	case h.Cfg != "":
		key, value, withValue := strings.Cut(h.Cfg, "=")
		return func(f rustflags.Flag) bool {
			c, ok := f.(rustflags.Cfg)
			if !ok || c.Key != key {
				return false
			}
			return !withValue || (c.HasValue && c.Value == value)
		}, nil
	case h.Z != "":
		return func(f rustflags.Flag) bool {
			z, ok := f.(rustflags.Z)
			return ok && z.Option == h.Z
		}, nil
	}
	return nil, errors.New("one of --cfg or -Z is required")
}
