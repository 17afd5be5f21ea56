package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
	"github.com/aliskhannn/vocab-trainer/internal/repository"
	"github.com/aliskhannn/vocab-trainer/internal/service"
)

const envPrefix = "VOCAB"

var (
	ErrUnknownMode     = service.ErrUnknownMode
	ErrUnknownProvider = repository.ErrUnknownProvider
	ErrInvalidConfig   = errors.New("invalid configuration")
)

var validate = newValidator()

// newValidator adds the "mode" and "provider" tags, backed by the mode and
// provider sets the rest of the program dispatches on.
func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "mode", service.ModeNames)
	mustRegister(v, "provider", repository.ProviderNames)
	return v
}

func mustRegister(v *validator.Validate, tag string, allowed []string) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Config holds application configuration loaded from files and environment variables.
// Mode and provider sections are resolved on demand with ForMode and ForProvider.
type Config struct {
	Env       string    `mapstructure:"env" validate:"required"` // current application environment (local, production etc)
	Log       Log       `mapstructure:"log"`
	Providers Providers `mapstructure:"providers"`
	Modes     Modes     `mapstructure:"modes"`

	v *viper.Viper
}

// Log contains logging configuration.
type Log struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// Providers selects the vocabulary provider used when none is given on the command line.
type Providers struct {
	Default string `mapstructure:"default" validate:"provider"`
}

// Modes selects the review mode used when none is given on the command line.
type Modes struct {
	Default string `mapstructure:"default" validate:"mode"`
}

// ProviderConfig is a provider section merged over providers.common.
type ProviderConfig struct {
	Lang1     entities.LanguageName `mapstructure:"lang1"`
	Lang2     entities.LanguageName `mapstructure:"lang2"`
	FilePath  string                `mapstructure:"filepath"`  // singlefile
	FilePaths []string              `mapstructure:"filepaths"` // multifile
}

// ModeConfig is a mode section merged over modes.common.
type ModeConfig struct {
	ReviewNum         int                `mapstructure:"reviewnum" validate:"gte=0"` // 0 reviews every entry
	Shuffle           bool               `mapstructure:"shuffle"`
	Direction         entities.Direction `mapstructure:"direction" validate:"oneof=to_lang2 to_lang1"`
	RedoMissed        bool               `mapstructure:"redo_missed"`
	RedoLimit         int                `mapstructure:"redo_limit" validate:"gte=1"`
	MaxAttempts       int                `mapstructure:"max_attempts" validate:"gte=1"`
	ShowHint          bool               `mapstructure:"show_hint"`
	ShowNotes         bool               `mapstructure:"show_notes"`
	MissedFile        string             `mapstructure:"missed_file"`
	OutputFile        string             `mapstructure:"output_file"`
	Options           int                `mapstructure:"options" validate:"gte=2,lte=9"`
	FoldAccents       bool               `mapstructure:"fold_accents"`
	IgnorePunctuation bool               `mapstructure:"ignore_punctuation"`
}

// Load reads configuration from a config file and environment variables.
// An empty path searches for config.yaml in the working directory and ./config;
// a missing file is then not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // modes.common.reviewnum -> VOCAB_MODES_COMMON_REVIEWNUM
	v.AutomaticEnv()
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.v = v
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("log.level", "info")

	v.SetDefault("providers.default", repository.ProviderSingleFile)
	v.SetDefault("providers.common.lang1.short", "en")
	v.SetDefault("providers.common.lang1.full", "English")
	v.SetDefault("providers.common.lang2.short", "it")
	v.SetDefault("providers.common.lang2.full", "Italian")
	v.SetDefault("providers.singlefile.filepath", "vocab.txt")
	v.SetDefault("providers.multifile.filepaths", []string{})

	v.SetDefault("modes.default", service.ModePractice)
	v.SetDefault("modes.common.reviewnum", 10)
	v.SetDefault("modes.common.shuffle", false)
	v.SetDefault("modes.common.direction", string(entities.ToLang2))
	v.SetDefault("modes.common.redo_missed", false)
	v.SetDefault("modes.common.redo_limit", 1)
	v.SetDefault("modes.common.max_attempts", 1)
	v.SetDefault("modes.common.show_hint", true)
	v.SetDefault("modes.common.show_notes", true)
	v.SetDefault("modes.common.missed_file", "")
	v.SetDefault("modes.common.output_file", "")
	v.SetDefault("modes.common.options", 4)
	v.SetDefault("modes.common.fold_accents", false)
	v.SetDefault("modes.common.ignore_punctuation", false)
	v.SetDefault("modes.learn.max_attempts", 2)
}

// ForMode resolves the settings of mode name: modes.common, then
// modes.<name>, then overrides, which use the same keys as the file.
func (c *Config) ForMode(name string, overrides map[string]any) (ModeConfig, error) {
	if !slices.Contains(service.ModeNames, name) {
		return ModeConfig{}, fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}

	var mc ModeConfig
	if err := c.section("modes", name, overrides).Unmarshal(&mc); err != nil {
		return ModeConfig{}, fmt.Errorf("error unmarshalling mode %s: %w", name, err)
	}
	if err := validate.Struct(mc); err != nil {
		return ModeConfig{}, fmt.Errorf("%w: mode %s: %w", ErrInvalidConfig, name, err)
	}
	return mc, nil
}

// ForProvider resolves the settings of provider name the same way as ForMode.
func (c *Config) ForProvider(name string, overrides map[string]any) (ProviderConfig, error) {
	if !slices.Contains(repository.ProviderNames, name) {
		return ProviderConfig{}, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}

	var pc ProviderConfig
	if err := c.section("providers", name, overrides).Unmarshal(&pc); err != nil {
		return ProviderConfig{}, fmt.Errorf("error unmarshalling provider %s: %w", name, err)
	}
	if err := validate.Struct(pc); err != nil {
		return ProviderConfig{}, fmt.Errorf("%w: provider %s: %w", ErrInvalidConfig, name, err)
	}

	switch {
	case name == repository.ProviderSingleFile && pc.FilePath == "":
		return ProviderConfig{}, fmt.Errorf("%w: provider %s: filepath is required", ErrInvalidConfig, name)
	case name == repository.ProviderMultiFile && len(pc.FilePaths) == 0:
		return ProviderConfig{}, fmt.Errorf("%w: provider %s: filepaths is required", ErrInvalidConfig, name)
	}
	return pc, nil
}

// section flattens group.common and group.<name> into one viper instance,
// the named section winning, and applies overrides last.
func (c *Config) section(group, name string, overrides map[string]any) *viper.Viper {
	out := viper.New()
	keys := c.v.AllKeys()

	for _, prefix := range []string{group + ".common.", group + "." + name + "."} {
		for _, key := range keys {
			if rest, ok := strings.CutPrefix(key, prefix); ok {
				out.Set(rest, c.v.Get(key))
			}
		}
	}
	for key, value := range overrides {
		out.Set(key, value)
	}
	return out
}
