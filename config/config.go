// Package config reads the configuration of the process-wide random generator from the environment.
package config

import (
	"fmt"

	"github.com/couchbase/tools-random/log"
	"github.com/couchbase/tools-random/source"
)

const (
	// EnvSeed fixes the seed of the default generator, when unset it's seeded from the wall clock.
	EnvSeed = "TOOLS_RANDOM_SEED"

	// EnvEngine selects the engine of the default generator, see 'source.ParseKind'.
	EnvEngine = "TOOLS_RANDOM_ENGINE"

	// EnvDrawMode selects how integers are drawn, either "unbiased" or "modulo".
	EnvDrawMode = "TOOLS_RANDOM_DRAW_MODE"
)

// Config describes how to build a generator.
type Config struct {
	// Seed is the explicit seed, <nil> means seed from the current time.
	Seed *uint64

	// Kind is the engine implementation.
	Kind source.Kind

	// Mode is the integer draw mode.
	Mode source.DrawMode
}

// FromEnvironment returns the configuration described by the environment, variables which are unset keep their
// defaults. All invalid variables are reported together in a '*ValidationError'.
func FromEnvironment() (Config, error) {
	var (
		cfg  Config
		errs ValidationError
	)

	seed, ok, err := lookupUint64(EnvSeed)
	errs.Add(err)

	if ok {
		cfg.Seed = &seed
	}

	if name, ok := lookupString(EnvEngine); ok {
		kind, err := source.ParseKind(name)
		errs.Add(wrapVariable(EnvEngine, err))

		cfg.Kind = kind
	}

	if name, ok := lookupString(EnvDrawMode); ok {
		mode, err := source.ParseDrawMode(name)
		errs.Add(wrapVariable(EnvDrawMode, err))

		cfg.Mode = mode
	}

	if err := errs.ErrOrNil(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// NewGenerator builds the generator described by the configuration, seeded from the clock unless a seed was given.
func (c Config) NewGenerator(logger log.Logger) (*source.Generator, error) {
	gen, err := source.NewGenerator(source.GeneratorOptions{Kind: c.Kind, Mode: c.Mode, Logger: logger})
	if err != nil {
		return nil, err
	}

	if c.Seed != nil {
		gen.Seed(*c.Seed)
	}

	return gen, nil
}

func wrapVariable(varName string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("'%s': %w", varName, err)
}
