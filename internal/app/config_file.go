package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. It mirrors
// the flag surface so projects can check an i18nmark.yaml into their repo
// instead of repeating flags.
type FileConfig struct {
	Input          string   `yaml:"input" json:"input"`
	Output         string   `yaml:"output" json:"output"`
	Translations   string   `yaml:"translations" json:"translations"`
	Skip           []string `yaml:"skip" json:"skip"`
	Preserve       []string `yaml:"preserve" json:"preserve"`
	KeepAttributes bool     `yaml:"keepAttributes" json:"keepAttributes"`
	Verbose        bool     `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Defaults the flag layer starts from; file config may override a value
// only when the flag was left at its default.
const (
	InputDefault        = "index.html"
	TranslationsDefault = "translations.json"
)

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset or still at their flag default. Flags should
// already have been parsed; this lets file config supply defaults while
// preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputPath == "" || cfg.InputPath == InputDefault) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if (cfg.TranslationsPath == "" || cfg.TranslationsPath == TranslationsDefault) && fc.Translations != "" {
		cfg.TranslationsPath = fc.Translations
	}
	if len(cfg.SkipTags) == 0 && len(fc.Skip) > 0 {
		cfg.SkipTags = append([]string{}, fc.Skip...)
	}
	if len(cfg.PreserveTags) == 0 && len(fc.Preserve) > 0 {
		cfg.PreserveTags = append([]string{}, fc.Preserve...)
	}
	if !cfg.KeepAttributes && fc.KeepAttributes {
		cfg.KeepAttributes = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
