package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"crowdfund-web/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Chain   configs.Chain    `envPrefix:"CHAIN_"`
	Wallet  configs.Wallet   `envPrefix:"WALLET_"`
	Journal configs.Journal  `envPrefix:"JOURNAL_"`
	Display configs.Display  `envPrefix:"DISPLAY_"`
}

// Load reads an optional .env file and then environment variables into a
// Config. Variables already present in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(common.Address{}): parseAddress,
		},
	})
	if err != nil {
		return cfg, err
	}
	if cfg.Chain.ReadTimeout <= 0 {
		return cfg, errors.New("CHAIN_READ_TIMEOUT must be positive")
	}
	if cfg.Chain.ListingConcurrency <= 0 {
		return cfg, errors.New("CHAIN_LISTING_CONCURRENCY must be positive")
	}
	return cfg, nil
}

func parseAddress(v string) (interface{}, error) {
	if !common.IsHexAddress(v) {
		return nil, fmt.Errorf("invalid address %q", v)
	}
	return common.HexToAddress(v), nil
}
