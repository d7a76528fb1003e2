package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "MURAJAA"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env  string `mapstructure:"env" validate:"oneof=development production"` // development logs human-readable output
	API  API    `mapstructure:"api"`
	DB   DB     `mapstructure:"db"`
	Log  Log    `mapstructure:"log"`
	Quiz Quiz   `mapstructure:"quiz"`
}

// API configures the verse content provider.
type API struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Edition string        `mapstructure:"edition" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// DB configures local history storage.
type DB struct {
	Path string `mapstructure:"path"` // empty means the XDG data dir default
}

// Log configures the diagnostic log file.
type Log struct {
	File  string `mapstructure:"file"` // empty means the XDG state dir default
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// Quiz holds quiz defaults.
type Quiz struct {
	DefaultCount int `mapstructure:"default_count" validate:"min=1,max=100"`
}

var validate = validator.New()

// Load reads configuration from an optional .env file, config file and
// environment variables. An empty path searches the default locations and
// tolerates a missing file; an explicit path must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("env", "production")
	v.SetDefault("api.base_url", "https://api.alquran.cloud/v1")
	v.SetDefault("api.edition", "quran-simple")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("db.path", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("quiz.default_count", 10)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("db.path", "MURAJAA_DB", "MURAJAA_DB_PATH")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validateStruct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Dir returns $XDG_CONFIG_HOME/murajaa, falling back to ~/.config/murajaa.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "murajaa"), nil
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", fe.Namespace(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
