package anchor

import (
	"fmt"
	"os"
)

// Verbose controls whether Vprintf writes anything, in the style of
// cablastp's package-level verbosity gate.
var Verbose = false

// Vprintf writes a diagnostic line to stderr when Verbose is set.
func Vprintf(format string, v ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, v...)
}
