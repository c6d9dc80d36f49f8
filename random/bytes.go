package random

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"
)

var _ io.Reader = (*Rand)(nil)

// Read fills p with random bytes taken little-endian from the engine output, unused bytes of the final word are
// discarded. It always returns len(p) and a <nil> error.
func (r *Rand) Read(p []byte) (int, error) {
	var word [8]byte

	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(word[:], r.gen.Uint64())
		copy(p[i:], word[:])
	}

	return len(p), nil
}

// Bytes returns n random bytes.
func (r *Rand) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: number of bytes must be non-negative, got %d", ErrInvalidParameter, n)
	}

	b := make([]byte, n)

	// Reading from a Rand can't fail.
	_, _ = r.Read(b)

	return b, nil
}

// UUID returns a version 4 UUID drawn from the generator, unlike 'uuid.New' the result is reproducible from the seed.
func (r *Rand) UUID() uuid.UUID {
	return uuid.Must(uuid.NewRandomFromReader(r))
}
