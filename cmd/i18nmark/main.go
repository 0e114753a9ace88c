package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/i18nmark/i18nmark/internal/app"
)

// tagList collects repeatable tag-name flags. Comma-separated values are
// split so both -skip nav -skip footer and -skip nav,footer work.
type tagList []string

func (l *tagList) String() string { return strings.Join(*l, ",") }

func (l *tagList) Set(v string) error {
	for _, p := range strings.Split(v, ",") {
		if s := strings.TrimSpace(p); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		outputPath   string
		translations string
		configPath   string
		keepAttrs    bool
		verbose      bool
		showVersion  bool
		skipTags     tagList
		preserveTags tagList
	)

	flag.StringVar(&outputPath, "output", "", "Path to write the annotated HTML document (default: input path with an _i18n suffix)")
	flag.StringVar(&translations, "translations", app.TranslationsDefault, "Path to write the translation dictionary JSON")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file supplying defaults for unset flags")
	flag.BoolVar(&keepAttrs, "keep-attrs", false, "Keep original attributes alongside their data-i18n-* annotations")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version information and exit")
	flag.Var(&skipTags, "skip", "Extra tag whose subtree is never annotated (repeatable)")
	flag.Var(&preserveTags, "preserve", "Extra inline formatting tag that is never whole-node annotated (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [input.html]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("i18nmark %s (%s, %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	inputPath := app.InputDefault
	if flag.NArg() > 0 {
		inputPath = flag.Arg(0)
	}

	cfg := app.Config{
		InputPath:        inputPath,
		OutputPath:       outputPath,
		TranslationsPath: translations,
		SkipTags:         skipTags,
		PreserveTags:     preserveTags,
		KeepAttributes:   keepAttrs,
		Verbose:          verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config file")
			os.Exit(exitCode(err))
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = app.DefaultOutputPath(cfg.InputPath)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy onto distinct process exit codes so
// calling scripts can tell a missing input from a permission or encoding
// problem.
func exitCode(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return 2
	case errors.Is(err, fs.ErrPermission):
		return 3
	case errors.Is(err, app.ErrNotUTF8):
		return 4
	default:
		return 1
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return a.Run(context.Background())
}
