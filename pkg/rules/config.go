package rules

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrConfigParse is returned when environment variables cannot be parsed
// into a Config.
var ErrConfigParse = errors.New("failed to parse rules config from environment")

// Config carries engine settings that deployments commonly want to flip
// without a rebuild. Apply it with WithConfig.
type Config struct {
	// StrictPreconditions fails evaluation fast on unknown precondition keys
	// instead of silently skipping the dependent rule.
	StrictPreconditions bool `env:"RULES_STRICT_PRECONDITIONS" envDefault:"false"`

	// OrderedPreconditions makes set construction require every precondition
	// key to be declared earlier in the sequence.
	OrderedPreconditions bool `env:"RULES_ORDERED_PRECONDITIONS" envDefault:"false"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads Config from environment variables, loading a .env file
// first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrConfigParse, err)
	}
	return cfg, nil
}
