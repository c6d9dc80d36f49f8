// Package random provides seedable pseudo-random numbers: integer ranges, continuous distributions and generic
// selection (choice, shuffle and sample) over the containers described by the 'population' package.
package random

import (
	"github.com/couchbase/tools-random/log"
	"github.com/couchbase/tools-random/source"
	"github.com/couchbase/tools-random/timeprovider"
)

// Options encapsulates the options available when creating a 'Rand'.
type Options struct {
	// Kind is the engine implementation, defaults to 'source.KindPCG'.
	Kind source.Kind

	// Mode is the integer draw mode, defaults to 'source.DrawUnbiased'. Use 'source.DrawModulo' to reproduce output
	// from implementations which reduce the engine output modulo n.
	Mode source.DrawMode

	// Seed is the initial seed, when not supplied the generator is seeded from Clock.
	Seed *uint64

	// Clock is used when seeding from the time, defaults to the system clock.
	Clock timeprovider.TimeProvider

	// Logger receives reseeding events, when not supplied logging is skipped.
	Logger log.Logger

	// EngineFactory overrides the engine construction for Kind.
	EngineFactory source.EngineFactory
}

// Rand is a randomness context, it owns a generator and the seed it was built from.
//
// NOTE: Rand is not safe for concurrent use, callers sharing one between goroutines must synchronise access.
type Rand struct {
	gen *source.Generator
}

// New returns a new Rand built from the given options.
func New(options Options) (*Rand, error) {
	gen, err := source.NewGenerator(source.GeneratorOptions{
		Kind:          options.Kind,
		Mode:          options.Mode,
		Clock:         options.Clock,
		Logger:        options.Logger,
		EngineFactory: options.EngineFactory,
	})
	if err != nil {
		return nil, err
	}

	if options.Seed != nil {
		gen.Seed(*options.Seed)
	}

	return &Rand{gen: gen}, nil
}

// NewSeeded returns a Rand using the default engine, seeded with the given value.
func NewSeeded(seed uint64) *Rand {
	// The default options always build a valid generator.
	r, _ := New(Options{Seed: &seed})
	return r
}

// FromGenerator returns a Rand which draws from the given generator.
func FromGenerator(gen *source.Generator) *Rand {
	return &Rand{gen: gen}
}

// Generator returns the underlying generator, it satisfies 'math/rand/v2.Source'.
func (r *Rand) Generator() *source.Generator {
	return r.gen
}

// Seed reinitialises the generator with the given seed.
func (r *Rand) Seed(seed uint64) {
	r.gen.Seed(seed)
}

// SeedFromTime reinitialises the generator from the current time, returning the seed which was used.
func (r *Rand) SeedFromTime() uint64 {
	return r.gen.SeedFromTime()
}

// Reset reinitialises the generator from the stored seed, subsequent calls repeat the output produced after the last
// call to 'Seed'.
func (r *Rand) Reset() {
	r.gen.Reset()
}

// SeedValue returns the seed the current stream was built from.
func (r *Rand) SeedValue() uint64 {
	return r.gen.SeedValue()
}

// Random returns a float in [0.0, 1.0).
func (r *Rand) Random() float64 {
	return r.gen.Float64()
}

// below returns an integer in [0, n), n must be positive.
func (r *Rand) below(n int) int {
	return int(r.gen.Below(uint64(n)))
}
