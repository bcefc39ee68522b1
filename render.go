package enginelog

import (
	"fmt"
	"io"
	"unsafe"
)

// ScratchSize is the capacity of the stack buffer used for short lines.
const ScratchSize = 128

// measureSink receives the measuring pass; swapped in tests.
var measureSink io.Writer = io.Discard

// render turns one format request into the finished line in two passes.
//
// Passes:
//   - Measure: fmt.Fprintf into a discarding writer reports the exact byte count. The
//     same verbs, width and precision rules drive both passes, so the render fits.
//   - Render: lines of at most ScratchSize bytes are appended into a stack array and
//     copied once into the returned string. Longer lines get one heap buffer of exactly
//     the measured size, which becomes the string without a copy.
//
// Only a failing measure is an error. An argument whose output changes between the
// passes (a Stringer reading live state) still yields a complete line: Appendf grows
// the buffer as needed and the line is returned as rendered.
func render(format string, args []any) (string, error) {
	size, err := fmt.Fprintf(measureSink, format, args...)
	if err != nil {
		return "", fmt.Errorf("%w: measure: %v", ErrRender, err)
	}

	if size <= ScratchSize {
		var scratch [ScratchSize]byte
		return string(fmt.Appendf(scratch[:0], format, args...)), nil
	}

	b := renderExact(format, args, size)
	// b is never written again, so it can back the string directly.
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}

// renderExact renders into a heap buffer allocated with capacity size.
func renderExact(format string, args []any, size int) []byte {
	return fmt.Appendf(make([]byte, 0, size), format, args...)
}
