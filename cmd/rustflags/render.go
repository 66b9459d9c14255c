package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cbroglie/mustache"
	"github.com/epithet-ssh/rustflags/pkg/rustflags"
)

// RenderCLI renders a mustache template with the flags as its context.
//
// The context has four lists:
//
//	cfg:   {key, value, has_value, text}
//	z:     {option, text}
//	other: {args, text}
//	flags: every flag in order, {kind, text, is_cfg, is_z, is_other}
type RenderCLI struct {
	Template string `arg:"" optional:"" help:"Template text"`
	File     string `help:"Read the template from a file" short:"f" type:"existingfile"`
}

func (r *RenderCLI) Run(logger *slog.Logger, env rustflags.Env, w io.Writer) error {
	tmpl := r.Template
	if r.File != "" {
		body, err := os.ReadFile(r.File)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
		tmpl = string(body)
	}
	if tmpl == "" {
		return fmt.Errorf("a template or --file is required")
	}

	out, err := mustache.Render(tmpl, templateContext(env.Flags().Collect()))
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	logger.Debug("rendered template", "bytes", len(out))

	_, err = io.WriteString(w, out)
	return err
}

func templateContext(flags []rustflags.Flag) map[string]any {
	var (
		cfgs   []map[string]any
		zs     []map[string]any
		others []map[string]any
		all    []map[string]any
	)
	for _, f := range flags {
		text := f.String()
		switch f := f.(type) {
		case rustflags.Cfg:
			cfgs = append(cfgs, map[string]any{
				"key":       f.Key,
				"value":     f.Value,
				"has_value": f.HasValue,
				"text":      text,
			})
		case rustflags.Z:
			zs = append(zs, map[string]any{
				"option": f.Option,
				"text":   text,
			})
		case rustflags.Other:
			others = append(others, map[string]any{
				"args": f.Tokens,
				"text": text,
			})
		}
		all = append(all, map[string]any{
			"kind":     f.Kind().String(),
			"text":     text,
			"is_cfg":   f.Kind() == rustflags.KindCfg,
			"is_z":     f.Kind() == rustflags.KindZ,
			"is_other": f.Kind() == rustflags.KindOther,
		})
	}
	return map[string]any{
		"cfg":   cfgs,
		"z":     zs,
		"other": others,
		"flags": all,
	}
}
