package enginelog

import "errors"

var (
	// ErrNoCallback is returned by Builder.Build when no callback was set.
	ErrNoCallback = errors.New("enginelog: no callback")

	// ErrRender marks a log call whose line could not be formatted at all.
	ErrRender = errors.New("enginelog: render failed")
)
