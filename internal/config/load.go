package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// UI modes accepted by the ui setting.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// EnvPrefix prefixes environment overrides, e.g. QUIZ_UI.
const EnvPrefix = "QUIZ"

// Config holds quiz settings loaded from the config file and environment.
type Config struct {
	Version       int    `mapstructure:"version"`
	QuestionsFile string `mapstructure:"questions_file"` // empty selects the built-in sample set
	UI            string `mapstructure:"ui"`
	NoColor       bool   `mapstructure:"no_color"`

	// Path is the config file that was read, empty when none was found.
	Path string `mapstructure:"-"`
	// Root is the directory relative paths are resolved against.
	Root string `mapstructure:"-"`
}

// Load reads an optional config file plus QUIZ_* environment overrides.
// A .env file in the project root is applied first without overriding
// variables already set.
func Load(path string) (Config, error) {
	root, err := rootFor(path)
	if err != nil {
		return Config{}, err
	}
	if err := loadDotEnv(root); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("version", 1)
	v.SetDefault("questions_file", "")
	v.SetDefault("ui", UIAuto)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Path = path
	cfg.Root = root
	Normalize(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize trims values and resolves the questions file against Root.
func Normalize(cfg *Config) {
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
	if cfg.QuestionsFile != "" && !filepath.IsAbs(cfg.QuestionsFile) && cfg.Root != "" {
		cfg.QuestionsFile = filepath.Join(cfg.Root, cfg.QuestionsFile)
	}
}

// Validate checks setting values.
func Validate(cfg Config) error {
	var problems []string
	if cfg.Version != 1 {
		problems = append(problems, fmt.Sprintf("version: unsupported version %d", cfg.Version))
	}
	if !ValidUIMode(cfg.UI) {
		problems = append(problems, fmt.Sprintf("ui: invalid mode %q (expected auto|live|plain)", cfg.UI))
	}
	if len(problems) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidUIMode reports whether mode is one of the supported UI modes.
func ValidUIMode(mode string) bool {
	switch mode {
	case UIAuto, UILive, UIPlain:
		return true
	default:
		return false
	}
}

func rootFor(path string) (string, error) {
	if path != "" {
		return RootFromConfigPath(path), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}

func loadDotEnv(root string) error {
	envPath := filepath.Join(root, EnvFileName)
	if _, err := os.Stat(envPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", envPath, err)
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	return nil
}
