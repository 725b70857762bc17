package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string        `yaml:"addr" validate:"required"`
	DatabaseDriver string        `yaml:"database_driver" validate:"oneof=sqlite postgres"`
	DatabaseURL    string        `yaml:"database_url" validate:"required"`
	APITimeout     time.Duration `yaml:"timeout"`
	Debug          bool          `yaml:"debug"`
	// StrictStatus reports unprocessable requests with HTTP 422 instead of
	// HTTP 200 + success:false, and hardens question creation.
	StrictStatus bool   `yaml:"strict_status"`
	CORSOrigin   string `yaml:"cors_origin" validate:"required"`
	Migrate      bool   `yaml:"migrate"`
}

// LoadConfig builds the configuration from defaults, TRIVIA_* environment
// variables and, when path is not empty, a YAML file whose values win.
func LoadConfig(path string) (*Config, error) {
	apiTimeout, err := getEnvDuration("TRIVIA_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	debug, err := getEnvBool("TRIVIA_DEBUG", false)
	if err != nil {
		return nil, err
	}
	strict, err := getEnvBool("TRIVIA_STRICT_STATUS", false)
	if err != nil {
		return nil, err
	}
	migrate, err := getEnvBool("TRIVIA_MIGRATE", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:           getEnv("TRIVIA_ADDR", ":8080"),
		DatabaseDriver: getEnv("TRIVIA_DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    getEnv("TRIVIA_DATABASE_URL", "trivia.db"),
		APITimeout:     apiTimeout,
		Debug:          debug,
		StrictStatus:   strict,
		CORSOrigin:     getEnv("TRIVIA_CORS_ORIGIN", "*"),
		Migrate:        migrate,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks the configuration is usable by the server.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.APITimeout <= 0 {
		return errors.New("invalid config: timeout must be positive")
	}
	return nil
}

// LogLevel is the slog level implied by the debug flag.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
