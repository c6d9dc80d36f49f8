package source

import "errors"

var (
	// ErrUnknownKind is returned when parsing an engine kind which isn't supported.
	ErrUnknownKind = errors.New("unknown random engine kind")

	// ErrUnknownDrawMode is returned when parsing a draw mode which isn't supported.
	ErrUnknownDrawMode = errors.New("unknown draw mode")
)
