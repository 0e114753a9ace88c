// Package app wires the annotation pipeline together: read one HTML
// document, walk and annotate its tree, and write the rewritten document
// plus the translation dictionary.
package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/renameio"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/i18nmark/i18nmark/internal/annotate"
	"github.com/i18nmark/i18nmark/internal/registry"
	"github.com/i18nmark/i18nmark/internal/render"
)

type App struct {
	cfg Config
	pol *annotate.Policy
}

// New validates cfg and builds the tag policy.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	pol, err := annotate.NewPolicy(annotate.Options{
		ExtraSkip:      cfg.SkipTags,
		ExtraPreserve:  cfg.PreserveTags,
		KeepAttributes: cfg.KeepAttributes,
	})
	if err != nil {
		return nil, fmt.Errorf("tag policy: %w", err)
	}
	return &App{cfg: cfg, pol: pol}, nil
}

// Run executes one synchronous pass: read, parse, annotate, serialize,
// write. There are no suspension points and no mid-traversal I/O; the
// operation either completes or fails outright.
func (a *App) Run(ctx context.Context) error {
	_ = ctx // cancellation is not supported; kept for call-site symmetry
	start := time.Now()

	raw, err := os.ReadFile(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if !utf8.Valid(raw) {
		return fmt.Errorf("decode %s: %w", a.cfg.InputPath, ErrNotUTF8)
	}
	log.Debug().Str("input", a.cfg.InputPath).Int("bytes", len(raw)).Msg("input loaded")

	reg := registry.New()
	var out bytes.Buffer
	if isFullDocument(raw) {
		doc, err := html.Parse(bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("parse html: %w", err)
		}
		annotate.Walk(doc, a.pol, reg)
		if err := render.Document(&out, doc); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	} else {
		// Template partials come without <html>/<body>; parsing them as a
		// fragment keeps the output free of a synthetic document shell.
		container := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
		nodes, err := html.ParseFragment(bytes.NewReader(raw), container)
		if err != nil {
			return fmt.Errorf("parse html fragment: %w", err)
		}
		for _, n := range nodes {
			container.AppendChild(n)
		}
		annotate.WalkFragment(container, a.pol, reg)
		if err := render.Fragment(&out, container); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	log.Info().Int("keys", reg.Len()).Msg("document annotated")

	if err := writeAtomic(a.cfg.OutputPath, out.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	var dict bytes.Buffer
	if err := reg.WriteJSON(&dict); err != nil {
		return fmt.Errorf("encode translations: %w", err)
	}
	if err := writeAtomic(a.cfg.TranslationsPath, dict.Bytes()); err != nil {
		return fmt.Errorf("write translations: %w", err)
	}

	log.Info().
		Str("output", a.cfg.OutputPath).
		Str("translations", a.cfg.TranslationsPath).
		Dur("took", time.Since(start)).
		Msg("run complete")
	return nil
}

// isFullDocument reports whether the input carries its own document shell.
func isFullDocument(raw []byte) bool {
	s := strings.ToLower(string(raw))
	return strings.Contains(s, "<html") || strings.Contains(s, "<!doctype")
}

// writeAtomic stages data in a temp file and renames it over path, so an
// existing file is never left half-written.
func writeAtomic(path string, data []byte) error {
	t, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer t.Cleanup()
	if _, err := t.Write(data); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}
