package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/epithet-ssh/rustflags/pkg/rustflags"
	"github.com/lmittmann/tint"
)

var cli struct {
	Verbose int     `short:"v" type:"counter" help:"Log verbosity (-v info, -vv debug)"`
	Var     string  `default:"CARGO_ENCODED_RUSTFLAGS" env:"RUSTFLAGS_VAR" help:"Environment variable holding the encoded flags"`
	Encoded *string `help:"Use this encoded value instead of the environment"`
	Sep     string  `help:"Text in --encoded that stands for the 0x1F separator (default: the four characters backslash x 1 f)"`

	List   ListCLI   `cmd:"" default:"withargs" help:"Print every classified flag"`
	Has    HasCLI    `cmd:"" help:"Exit 0 if a flag is present, 1 if not"`
	Args   ArgsCLI   `cmd:"" help:"Re-expand flags into compiler arguments"`
	Render RenderCLI `cmd:"" help:"Render a mustache template against the flags"`
}

// errAbsent is returned by `has` when the flag is not set.
var errAbsent = errors.New("flag not present")

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("rustflags"),
		kong.Description("Inspect the compiler flags Cargo passes to build scripts."),
		kong.UsageOnError(),
		kong.Exit(func(code int) { os.Exit(exitCode(code)) }),
	)

	logger := setupLogging(os.Stderr, cli.Verbose)

	env, err := loadEnv(logger)
	if err != nil {
		logger.Error("failed to read flags", "error", err)
		os.Exit(2)
	}

	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	err = ctx.Run(logger, env)
	switch {
	case err == nil:
	case errors.Is(err, errAbsent):
		os.Exit(1)
	default:
		logger.Error("command failed", "error", err)
		os.Exit(2)
	}
}

// exitCode maps kong's usage error status (80) to 2, the status used for
// every other error.
func exitCode(code int) int {
	if code == 80 {
		return 2
	}
	return code
}

func setupLogging(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func loadEnv(logger *slog.Logger) (rustflags.Env, error) {
	if cli.Encoded != nil {
		raw := strings.ReplaceAll(*cli.Encoded, sepText(cli.Sep), string(rustflags.Separator))
		logger.Debug("using encoded flags from command line", "bytes", len(raw))
		return rustflags.Env{Name: "--encoded", Raw: raw, Present: true}, nil
	}

	env, err := rustflags.LookupEnv(cli.Var, rustflags.WithLogger(logger))
	if err != nil {
		return rustflags.Env{}, fmt.Errorf("failed to read %s: %w", cli.Var, err)
	}
	if !env.Present {
		logger.Info("environment variable not set, no flags", "var", cli.Var)
	}
	return env, nil
}

// sepText is the text replaced by Separator in --encoded. Raw 0x1F bytes
// are always accepted as well.
func sepText(sep string) string {
	if sep == "" {
		return `\x1f`
	}
	return sep
}
