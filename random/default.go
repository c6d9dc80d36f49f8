package random

import (
	"sync"

	"github.com/couchbase/tools-random/config"
	"github.com/couchbase/tools-random/log"
)

var (
	defaultOnce sync.Once
	defaultRand *Rand
)

// Default returns the process-wide Rand, building it from the environment (see the 'config' package) on first use.
// Invalid environment values are logged and ignored.
//
// The selection functions use the default when passed a <nil> Rand.
func Default() *Rand {
	defaultOnce.Do(func() {
		defaultRand = newFromEnvironment()
	})

	return defaultRand
}

// SetDefault replaces the process-wide Rand, passing <nil> discards it so that the next use rebuilds it from the
// environment.
func SetDefault(r *Rand) {
	if r == nil {
		defaultOnce = sync.Once{}
		defaultRand = nil

		return
	}

	defaultOnce.Do(func() {})
	defaultRand = r
}

func newFromEnvironment() *Rand {
	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Warnf("(Random) Ignoring environment configuration: %v", err)

		cfg = config.Config{}
	}

	gen, err := cfg.NewGenerator(packageLogger{})
	if err != nil {
		log.Warnf("(Random) Failed to build configured generator, using defaults: %v", err)

		return NewSeeded(0)
	}

	return FromGenerator(gen)
}

// packageLogger forwards to the package level logger, so the default instance follows 'log.SetLogger'.
type packageLogger struct{}

func (packageLogger) Log(level log.Level, format string, args ...any) {
	log.Logf(level, format, args...)
}

// resolve returns the given Rand, or the process-wide default if it's <nil>.
func resolve(r *Rand) *Rand {
	if r == nil {
		return Default()
	}

	return r
}

// Seed reseeds the process-wide Rand.
func Seed(seed uint64) {
	Default().Seed(seed)
}

// SeedFromTime reseeds the process-wide Rand from the current time.
func SeedFromTime() uint64 {
	return Default().SeedFromTime()
}

// Reset reinitialises the process-wide Rand from its stored seed.
func Reset() {
	Default().Reset()
}

// Randrange returns an integer in [0, stop) from the process-wide Rand.
func Randrange(stop int) (int, error) {
	return Default().Randrange(stop)
}

// RandrangeStep returns an element of range(start, stop, step) from the process-wide Rand.
func RandrangeStep(start, stop, step int) (int, error) {
	return Default().RandrangeStep(start, stop, step)
}

// Randint returns an integer in [a, b] from the process-wide Rand.
func Randint(a, b int) (int, error) {
	return Default().Randint(a, b)
}

// Random returns a float in [0.0, 1.0) from the process-wide Rand.
func Random() float64 {
	return Default().Random()
}

// Uniform returns a float between a and b from the process-wide Rand.
func Uniform(a, b float64) float64 {
	return Default().Uniform(a, b)
}

// Gauss returns a normally distributed float from the process-wide Rand.
func Gauss(mu, sigma float64) float64 {
	return Default().Gauss(mu, sigma)
}

// Probability returns true with probability p using the process-wide Rand.
func Probability(p float64) bool {
	return Default().Probability(p)
}
