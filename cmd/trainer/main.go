package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-trainer/internal/config"
	"github.com/aliskhannn/vocab-trainer/internal/delivery/terminal"
	"github.com/aliskhannn/vocab-trainer/internal/logger"
	"github.com/aliskhannn/vocab-trainer/internal/repository"
	"github.com/aliskhannn/vocab-trainer/internal/service"
)

type options struct {
	configPath string
	mode       string
	provider   string
	files      []string
	reviewNum  int
	shuffle    bool
	direction  string
	redo       bool
	clear      bool
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	var o options
	flags := pflag.NewFlagSet("trainer", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trainer [flags] [vocab files...]\n\nFlags:\n%s", flags.FlagUsages())
	}

	flags.StringVarP(&o.configPath, "config", "c", "", "path to config.yaml")
	flags.StringVarP(&o.mode, "mode", "m", "", "review mode: practice, rapid, learn or choice")
	flags.StringVarP(&o.provider, "provider", "p", "", "vocabulary provider: singlefile or multifile")
	flags.StringArrayVarP(&o.files, "file", "f", nil, "vocabulary file, repeat for several files")
	flags.IntVarP(&o.reviewNum, "reviewnum", "n", 0, "number of entries per review, 0 for all")
	flags.BoolVarP(&o.shuffle, "shuffle", "s", false, "review a random sample")
	flags.StringVarP(&o.direction, "direction", "d", "", "to_lang2 or to_lang1")
	flags.BoolVar(&o.redo, "redo", false, "repeat missed entries at the end of the review")
	flags.BoolVar(&o.clear, "clear", false, "clear the screen before every item")

	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}
	o.files = append(o.files, flags.Args()...)
	return &o, flags, nil
}

// modeOverrides keeps only the flags given on the command line.
func (o *options) modeOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)
	if flags.Changed("reviewnum") {
		overrides["reviewnum"] = o.reviewNum
	}
	if flags.Changed("shuffle") {
		overrides["shuffle"] = o.shuffle
	}
	if flags.Changed("direction") {
		overrides["direction"] = o.direction
	}
	if flags.Changed("redo") {
		overrides["redo_missed"] = o.redo
	}
	return overrides
}

// providerName picks multifile automatically when several files are given.
func (o *options) providerName(cfg *config.Config) string {
	switch {
	case o.provider != "":
		return o.provider
	case len(o.files) > 1:
		return repository.ProviderMultiFile
	case len(o.files) == 1:
		return repository.ProviderSingleFile
	default:
		return cfg.Providers.Default
	}
}

func (o *options) providerOverrides(name string) map[string]any {
	overrides := make(map[string]any)
	if len(o.files) == 0 {
		return overrides
	}
	if name == repository.ProviderMultiFile {
		overrides["filepaths"] = o.files
	} else {
		overrides["filepath"] = o.files[0]
	}
	return overrides
}

func main() {
	opts, flags, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, opts, flags, lg); err != nil {
		lg.Error("trainer stopped with error", zap.Error(err))
		_ = lg.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, opts *options, flags *pflag.FlagSet, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mode := cfg.Modes.Default
	if opts.mode != "" {
		mode = opts.mode
	}
	overrides := opts.modeOverrides(flags)
	// Fail before the menu when the mode or its flags are invalid.
	if _, err := cfg.ForMode(mode, overrides); err != nil {
		return err
	}

	providerName := opts.providerName(cfg)
	pc, err := cfg.ForProvider(providerName, opts.providerOverrides(providerName))
	if err != nil {
		return err
	}

	provider, err := repository.NewProvider(providerName, repository.ProviderOptions{
		FilePath:  pc.FilePath,
		FilePaths: pc.FilePaths,
		Lang1:     pc.Lang1,
		Lang2:     pc.Lang2,
	}, lg)
	if err != nil {
		return err
	}

	console := terminal.NewConsole(os.Stdin, os.Stdout, terminal.WithClearScreen(opts.clear))
	handler := terminal.NewHandler(console, lg, cfg, provider, service.NewItemSelector(), mode, overrides)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
