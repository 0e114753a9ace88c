package app

import (
	"errors"
	"path/filepath"
	"strings"
)

// Config carries every runtime setting for a single run.
type Config struct {
	// InputPath is the HTML document to annotate.
	InputPath string
	// OutputPath receives the rewritten document.
	OutputPath string
	// TranslationsPath receives the key dictionary JSON.
	TranslationsPath string
	// SkipTags extends the default set of tags whose subtrees are never
	// inspected.
	SkipTags []string
	// PreserveTags extends the default set of inline formatting tags.
	PreserveTags []string
	// KeepAttributes retains original attributes next to their
	// data-i18n-* annotations.
	KeepAttributes bool
	Verbose        bool
}

// DefaultOutputPath derives the annotated-document path from the input path
// by appending an _i18n suffix before the extension.
func DefaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_i18n" + ext
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if strings.TrimSpace(cfg.TranslationsPath) == "" {
		return errors.New("config: translations path is required")
	}
	if cfg.OutputPath == cfg.InputPath {
		return errors.New("config: output path must differ from input path")
	}
	return nil
}
