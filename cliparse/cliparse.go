package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Document ceilings
	MaxItems  int
	MaxListKB int

	// System-wide scale clamp bounds. A list's scale.min is clamped
	// into [1, ScaleMinLimit] and scale.max into [2, ScaleMaxLimit].
	ScaleMinLimit int
	ScaleMaxLimit int

	// Lists expire this many days after their last successful write.
	ListTTLDays int

	// Rate governance
	DisableRateLimits      bool
	SaveLimitPerMinute     int
	SaveLimitPerHour       int
	CreateLimitPerDay      int
	ListSaveLimitPerMinute int
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("gutboard", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.BoolVar(&cfg.DisableRateLimits, "no-rate-limits", false, "Disable all rate governance (dev only)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if !cfg.DisableRateLimits {
		cfg.DisableRateLimits = os.Getenv("DISABLE_RATE_LIMITS") == "true"
	}

	// Tuning knobs are env-only with defaults
	var err error
	if cfg.MaxItems, err = intEnv("MAX_ITEMS", 500); err != nil {
		return Config{}, err
	}
	if cfg.MaxListKB, err = intEnv("MAX_LIST_KB", 64); err != nil {
		return Config{}, err
	}
	if cfg.ScaleMinLimit, err = intEnv("SCALE_MIN_LIMIT", 5); err != nil {
		return Config{}, err
	}
	if cfg.ScaleMaxLimit, err = intEnv("SCALE_MAX_LIMIT", 10); err != nil {
		return Config{}, err
	}
	if cfg.ListTTLDays, err = intEnv("LIST_TTL_DAYS", 30); err != nil {
		return Config{}, err
	}
	if cfg.SaveLimitPerMinute, err = intEnv("SAVE_LIMIT_PER_MINUTE", 10); err != nil {
		return Config{}, err
	}
	if cfg.SaveLimitPerHour, err = intEnv("SAVE_LIMIT_PER_HOUR", 100); err != nil {
		return Config{}, err
	}
	if cfg.CreateLimitPerDay, err = intEnv("CREATE_LIMIT_PER_DAY", 20); err != nil {
		return Config{}, err
	}
	if cfg.ListSaveLimitPerMinute, err = intEnv("LIST_SAVE_LIMIT_PER_MINUTE", 30); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// intEnv reads an integer env variable, falling back to def when unset.
func intEnv(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid " + name + " env variable")
	}
	return v, nil
}
