// Package config loads lexibox settings from defaults, an optional config
// file, an optional .env file and LEXIBOX_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/lexibox/internal/db"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "LEXIBOX"

type Config struct {
	DB     DBConfig     `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	Study  StudyConfig  `mapstructure:"study"`
	Remind RemindConfig `mapstructure:"remind"`
}

type DBConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type LogConfig struct {
	Level    string `mapstructure:"level" validate:"oneof=debug info warn error"`
	UseCases bool   `mapstructure:"use_cases"`
}

// StudyConfig.DefaultTarget of zero means "use the suggested daily target".
type StudyConfig struct {
	DefaultTarget int `mapstructure:"default_target" validate:"gte=0,lte=100"`
}

type RemindConfig struct {
	Every time.Duration `mapstructure:"every" validate:"gte=1m"`
}

// LoadOptions points Load at non-default files. Empty fields use the
// defaults under the user's home directory and the working directory.
type LoadOptions struct {
	ConfigFile string
	EnvFile    string
	Home       string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig(home string) Config {
	return Config{
		DB:     DBConfig{Path: db.PathUnder(home)},
		Log:    LogConfig{Level: "info"},
		Study:  StudyConfig{DefaultTarget: 0},
		Remind: RemindConfig{Every: time.Hour},
	}
}

// Load reads configuration with the default file locations.
func Load() (*Config, error) {
	return LoadWith(LoadOptions{})
}

func LoadWith(opts LoadOptions) (*Config, error) {
	home := opts.Home
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		home = h
	}
	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = filepath.Join(home, ".lexibox", "config.yaml")
	}
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}

	// Variables already in the environment win over the .env file.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v, DefaultConfig(home))

	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.DB.Path = expandHome(cfg.DB.Path, home)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("db.path", d.DB.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.use_cases", d.Log.UseCases)
	v.SetDefault("study.default_target", d.Study.DefaultTarget)
	v.SetDefault("remind.every", d.Remind.Every)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
