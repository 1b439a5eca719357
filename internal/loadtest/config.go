package loadtest

import (
	"fmt"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	TypeCreate   = "create"
	TypeRedirect = "redirect"
	TypeMixed    = "mixed"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:5000"`
	SeedCount          int           `env:"SEED_COUNT" envDefault:"1000"`
	SeedConcurrency    int           `env:"SEED_CONCURRENCY" envDefault:"0"`
	SeedTimeout        time.Duration `env:"SEED_TIMEOUT" envDefault:"30s"`
	Rate               int           `env:"RATE" envDefault:"500"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	CreateRatio        float64       `env:"CREATE_RATIO" envDefault:"0.1"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	Connections        int           `env:"CONNECTIONS" envDefault:"10000"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	switch cfg.BenchType {
	case TypeCreate, TypeRedirect, TypeMixed:
	default:
		return nil, fmt.Errorf("unknown bench type: %s", cfg.BenchType)
	}
	if cfg.CreateRatio < 0 || cfg.CreateRatio > 1 {
		return nil, fmt.Errorf("create ratio must be within [0, 1], got %v", cfg.CreateRatio)
	}
	if cfg.SeedConcurrency <= 0 {
		cfg.SeedConcurrency = runtime.NumCPU() * 2
	}
	return &cfg, nil
}
