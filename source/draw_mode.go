package source

import (
	"fmt"
	"strings"
)

// DrawMode controls how integers in [0, n) are derived from the engine output.
type DrawMode int

const (
	// DrawUnbiased uses multiply-and-reject so that every value in [0, n) is equally likely.
	DrawUnbiased DrawMode = iota

	// DrawModulo reduces the engine output modulo n. This favours small values whenever n doesn't divide 2^64 and only
	// exists to reproduce output from implementations that draw this way.
	DrawModulo
)

func (m DrawMode) String() string {
	switch m {
	case DrawUnbiased:
		return "unbiased"
	case DrawModulo:
		return "modulo"
	}

	return fmt.Sprintf("DrawMode(%d)", int(m))
}

// ParseDrawMode returns the draw mode with the given (case insensitive) name.
func ParseDrawMode(s string) (DrawMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unbiased":
		return DrawUnbiased, nil
	case "modulo":
		return DrawModulo, nil
	}

	return 0, fmt.Errorf("%w '%s'", ErrUnknownDrawMode, s)
}
