// Package config loads CLI settings from a YAML file, a .env file and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/1F47E/go-inside-polygon/pkg/models"
)

// DefaultFile is read when no config path is given
const DefaultFile = "inpoly.yaml"

// Config structure for YAML configuration
type Config struct {
	Border      int  `yaml:"border"`
	Workers     int  `yaml:"workers"`
	BoundsCheck bool `yaml:"bounds_check"`
	Log         struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	PostGIS struct {
		DSN            string `yaml:"dsn"`
		MaxConnections int    `yaml:"max_connections"`
	} `yaml:"postgis"`
}

// Default returns the configuration used when nothing else is set
func Default() Config {
	var cfg Config
	cfg.Border = int(models.DefaultBorder)
	cfg.Workers = runtime.NumCPU()
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.PostGIS.MaxConnections = 4
	return cfg
}

// Load reads path (a missing file is not an error), then envFile via
// godotenv, then INPOLY_* environment variables.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("INPOLY_BORDER"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("INPOLY_BORDER: %w", err)
		}
		cfg.Border = n
	}
	if v, ok := os.LookupEnv("INPOLY_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("INPOLY_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if v, ok := os.LookupEnv("INPOLY_BOUNDS_CHECK"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("INPOLY_BOUNDS_CHECK: %w", err)
		}
		cfg.BoundsCheck = b
	}
	if v, ok := os.LookupEnv("INPOLY_LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("INPOLY_LOG_FORMAT"); ok {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("INPOLY_POSTGIS_DSN"); ok {
		cfg.PostGIS.DSN = v
	}
	return nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Border < 0 || c.Border > 255 {
		return fmt.Errorf("border %d outside 0-255", c.Border)
	}
	if c.Border == int(models.Inside) || c.Border == int(models.Outside) {
		return fmt.Errorf("border %d collides with the inside (%d) or outside (%d) value",
			c.Border, models.Inside, models.Outside)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
