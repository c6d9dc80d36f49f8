package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-random/source"
)

func TestFromEnvironment(t *testing.T) {
	type test struct {
		name     string
		env      map[string]string
		expected Config
		errs     []error
	}

	seed := uint64(42)

	tests := []*test{
		{
			name: "Unset",
		},
		{
			name: "Empty",
			env:  map[string]string{EnvSeed: "", EnvEngine: " ", EnvDrawMode: ""},
		},
		{
			name:     "All",
			env:      map[string]string{EnvSeed: "42", EnvEngine: "mt19937", EnvDrawMode: "modulo"},
			expected: Config{Seed: &seed, Kind: source.KindMT19937, Mode: source.DrawModulo},
		},
		{
			name:     "EngineOnly",
			env:      map[string]string{EnvEngine: "XorShift"},
			expected: Config{Kind: source.KindXorShift},
		},
		{
			name: "AllInvalid",
			env:  map[string]string{EnvSeed: "-1", EnvEngine: "lcg", EnvDrawMode: "fair"},
			errs: []error{source.ErrUnknownKind, source.ErrUnknownDrawMode},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, name := range []string{EnvSeed, EnvEngine, EnvDrawMode} {
				t.Setenv(name, test.env[name])
			}

			cfg, err := FromEnvironment()
			if len(test.errs) == 0 {
				require.NoError(t, err)
				require.Equal(t, test.expected, cfg)

				return
			}

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			require.Len(t, validation.Unwrap(), 3)
			require.Contains(t, err.Error(), EnvSeed)

			for _, expected := range test.errs {
				require.ErrorIs(t, err, expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	var errs ValidationError
	require.NoError(t, errs.ErrOrNil())
	require.Equal(t, "", errs.Error())

	errs.Add(nil)
	require.NoError(t, errs.ErrOrNil())

	errs.Add(errors.New("A"))
	errs.Add(errors.New("B"))
	require.EqualError(t, errs.ErrOrNil(), "invalid random configuration: A; B")
}

func TestNewGenerator(t *testing.T) {
	seed := uint64(9)

	gen, err := Config{Seed: &seed, Kind: source.KindChaCha8, Mode: source.DrawModulo}.NewGenerator(nil)
	require.NoError(t, err)
	require.Equal(t, source.KindChaCha8, gen.Kind())
	require.Equal(t, source.DrawModulo, gen.Mode())
	require.Equal(t, seed, gen.SeedValue())

	expected, err := source.NewSeededGenerator(source.GeneratorOptions{Kind: source.KindChaCha8}, seed)
	require.NoError(t, err)
	require.Equal(t, expected.Uint64(), gen.Uint64())
}

func TestNewGeneratorUnseeded(t *testing.T) {
	gen, err := Config{}.NewGenerator(nil)
	require.NoError(t, err)
	require.Equal(t, source.KindPCG, gen.Kind())
	require.Equal(t, source.DrawUnbiased, gen.Mode())
}

func TestNewGeneratorUnknownKind(t *testing.T) {
	_, err := Config{Kind: source.Kind(42)}.NewGenerator(nil)
	require.ErrorIs(t, err, source.ErrUnknownKind)
}
