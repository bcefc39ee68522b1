package enginelog

import (
	"fmt"
	"io"
	"os"
)

// FatalHandler is invoked when a line cannot be rendered because the formatting pass
// itself failed. The callback is not called for that line.
//
// The default handler reports err on stderr and exits with status 2. A handler that
// returns lets Logf return to the engine with the line dropped.
type FatalHandler func(err error)

// swapped in tests
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

func defaultFatal(err error) {
	fmt.Fprintf(stderr, "fatal: %v\n", err)
	exit(2)
}
