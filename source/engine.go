// Package source provides the seedable bit sources which every random operation in this module draws from.
package source

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lazybeaver/xorshift"
)

//go:generate mockgen -source engine.go -destination mock_engine.go -package source

// Engine is a deterministic stream of uniformly distributed 64-bit values.
type Engine interface {
	Uint64() uint64
}

// EngineFactory builds a new engine from the given seed; calling it twice with the same seed must produce two engines
// which generate identical streams.
type EngineFactory func(seed uint64) Engine

// Kind identifies one of the supported engine implementations.
type Kind int

const (
	// KindPCG is a permuted congruential generator with 128 bits of state.
	KindPCG Kind = iota

	// KindChaCha8 is the ChaCha8 based generator from the standard library.
	KindChaCha8

	// KindXorShift is the xorshift64* generator.
	KindXorShift

	// KindMT19937 is the 64-bit Mersenne Twister.
	KindMT19937
)

// pcgIncrement is mixed into the seed to derive the second half of the PCG state.
const pcgIncrement = 0xda3e39cb94b95bdb

var kindNames = map[Kind]string{
	KindPCG:      "pcg",
	KindChaCha8:  "chacha8",
	KindXorShift: "xorshift",
	KindMT19937:  "mt19937",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return name
}

// ParseKind returns the kind with the given (case insensitive) name.
func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w '%s'", ErrUnknownKind, s)
}

// Factory returns the factory used to construct engines of this kind.
func (k Kind) Factory() (EngineFactory, error) {
	switch k {
	case KindPCG:
		return newPCG, nil
	case KindChaCha8:
		return newChaCha8, nil
	case KindXorShift:
		return newXorShift, nil
	case KindMT19937:
		return func(seed uint64) Engine { return NewMT19937(seed) }, nil
	}

	return nil, fmt.Errorf("%w '%s'", ErrUnknownKind, k)
}

func newPCG(seed uint64) Engine {
	return rand.NewPCG(seed, seed^pcgIncrement)
}

func newChaCha8(seed uint64) Engine {
	var key [32]byte

	// Spread the seed over the whole key using splitmix64 so that nearby seeds produce unrelated keys.
	state := seed
	for i := 0; i < len(key); i += 8 {
		state += 0x9e3779b97f4a7c15

		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31

		binary.LittleEndian.PutUint64(key[i:], z)
	}

	return rand.NewChaCha8(key)
}

func newXorShift(seed uint64) Engine {
	// The all zero state is a fixed point for xorshift generators.
	if seed == 0 {
		seed = pcgIncrement
	}

	return xorShiftEngine{sequence: xorshift.NewXorShift64Star(seed)}
}

// xorShiftEngine adapts the xorshift sequence to the 'Engine' interface.
type xorShiftEngine struct {
	sequence interface{ Next() uint64 }
}

func (x xorShiftEngine) Uint64() uint64 {
	return x.sequence.Next()
}
