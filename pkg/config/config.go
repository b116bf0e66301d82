// Package config loads the maniverse settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kerbaras/maniverse/pkg/services"
)

const FileName = "config.yaml"

type Config struct {
	DataDir      string        `yaml:"data_dir" validate:"required"`
	AssetsDir    string        `yaml:"assets_dir"`
	LoadingDelay time.Duration `yaml:"loading_delay" validate:"gte=0s,lte=5s"`
	LogLevel     string        `yaml:"log_level" validate:"oneof=debug info warn error"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// DefaultDataDir is ~/.maniverse, or ./.maniverse when the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".maniverse"
	}
	return filepath.Join(home, ".maniverse")
}

func Default() *Config {
	return &Config{
		DataDir:      DefaultDataDir(),
		AssetsDir:    "assets",
		LoadingDelay: services.DefaultLoadingDelay,
		LogLevel:     "info",
	}
}

// Load reads path over the defaults. With an empty path the file is looked up
// in the default data directory and may be absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.DataDir, FileName)
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "maniverse.db")
}

func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "maniverse.log")
}
