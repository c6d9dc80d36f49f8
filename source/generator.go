package source

import (
	"math/bits"
	"math/rand/v2"

	"github.com/couchbase/tools-random/log"
	"github.com/couchbase/tools-random/timeprovider"
)

// GeneratorOptions encapsulates the options available when creating a generator.
type GeneratorOptions struct {
	// Kind is the engine implementation, defaults to 'KindPCG'.
	Kind Kind

	// Mode is the integer draw mode, defaults to 'DrawUnbiased'.
	Mode DrawMode

	// Clock is used by 'SeedFromTime', defaults to the system clock.
	Clock timeprovider.TimeProvider

	// Logger receives reseeding events, when not supplied logging is skipped.
	Logger log.Logger

	// EngineFactory overrides the factory for 'Kind', mainly useful for injecting scripted engines in tests.
	EngineFactory EngineFactory
}

func (o *GeneratorOptions) defaults() error {
	if o.Clock == nil {
		o.Clock = timeprovider.CurrentTimeProvider{}
	}

	if o.EngineFactory != nil {
		return nil
	}

	factory, err := o.Kind.Factory()
	if err != nil {
		return err
	}

	o.EngineFactory = factory

	return nil
}

// Generator owns an engine along with the seed it was built from, allowing the stream to be replayed.
//
// NOTE: Generator is not safe for concurrent use, callers sharing one between goroutines must synchronise access.
type Generator struct {
	options GeneratorOptions
	logger  log.WrappedLogger
	seed    uint64
	engine  Engine
}

var _ rand.Source = (*Generator)(nil)

// NewGenerator returns a generator seeded from the configured clock.
func NewGenerator(options GeneratorOptions) (*Generator, error) {
	err := options.defaults()
	if err != nil {
		return nil, err
	}

	g := &Generator{options: options, logger: log.NewWrappedLogger(options.Logger)}

	if options.Mode == DrawModulo {
		g.logger.Warnf("(Random) Using modulo draws, integers in ranges which don't divide 2^64 will be biased")
	}

	g.SeedFromTime()

	return g, nil
}

// NewSeededGenerator returns a generator seeded with the given value.
func NewSeededGenerator(options GeneratorOptions, seed uint64) (*Generator, error) {
	g, err := NewGenerator(options)
	if err != nil {
		return nil, err
	}

	g.Seed(seed)

	return g, nil
}

// Seed stores the given seed and rebuilds the engine from it.
func (g *Generator) Seed(seed uint64) {
	g.seed = seed
	g.Reset()

	g.logger.Debugf("(Random) Seeded %s generator with %d", g.options.Kind, seed)
}

// SeedFromTime seeds the generator using the current wall-clock time, returning the seed which was used.
func (g *Generator) SeedFromTime() uint64 {
	seed := uint64(g.options.Clock.Now().UnixNano())
	g.Seed(seed)

	return seed
}

// Reset rebuilds the engine from the stored seed, the stream restarts from the beginning.
func (g *Generator) Reset() {
	g.engine = g.options.EngineFactory(g.seed)
}

// SeedValue returns the seed the current stream was built from.
func (g *Generator) SeedValue() uint64 {
	return g.seed
}

// Kind returns the engine kind.
func (g *Generator) Kind() Kind {
	return g.options.Kind
}

// Mode returns the draw mode.
func (g *Generator) Mode() DrawMode {
	return g.options.Mode
}

// Uint64 returns the next raw value from the engine.
func (g *Generator) Uint64() uint64 {
	return g.engine.Uint64()
}

// Float64 returns a uniformly distributed value in [0.0, 1.0) using the top 53 bits of the next engine value.
func (g *Generator) Float64() float64 {
	return float64(g.engine.Uint64()>>11) * 0x1p-53
}

// Below returns a value in [0, n), panicking if n is zero.
func (g *Generator) Below(n uint64) uint64 {
	if n == 0 {
		panic("invalid argument to Below: n must be positive")
	}

	if g.options.Mode == DrawModulo {
		return g.engine.Uint64() % n
	}

	return g.belowUnbiased(n)
}

// belowUnbiased implements Lemire's multiply-and-reject method, the low half of the product is used to reject the
// values which would otherwise over represent part of the range.
func (g *Generator) belowUnbiased(n uint64) uint64 {
	hi, lo := bits.Mul64(g.engine.Uint64(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul64(g.engine.Uint64(), n)
		}
	}

	return hi
}
