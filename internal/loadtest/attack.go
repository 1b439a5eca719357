package loadtest

import (
	"errors"
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var ErrNoSlugs = errors.New("attack requires seeded slugs")

func NewTargeter(cfg *Config, slugs []string) (vegeta.Targeter, error) {
	switch cfg.BenchType {
	case TypeCreate:
		return CreateTargeter(cfg.BaseURL), nil
	case TypeRedirect:
		if len(slugs) == 0 {
			return nil, ErrNoSlugs
		}
		return RedirectTargeter(cfg.BaseURL, slugs), nil
	case TypeMixed:
		if len(slugs) == 0 {
			return nil, ErrNoSlugs
		}
		return MixedTargeter(cfg.BaseURL, slugs, cfg.CreateRatio), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.BenchType)
	}
}

// Attack drives the configured load and writes a text report to out.
// Redirects are not followed, so a healthy redirect shows up as 302.
func Attack(cfg *Config, slugs []string, out io.Writer) error {
	targeter, err := NewTargeter(cfg, slugs)
	if err != nil {
		return err
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5*time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
	)

	fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.BenchType, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.BenchType) {
		metrics.Add(res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(out)
}
