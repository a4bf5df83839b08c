// Package mudebug provides the single ambient debug-logging hook used
// across the codec and SVG packages, gated by one package-level flag
// rather than threaded through every call as a parameter.
package mudebug

import (
	"fmt"
	"os"
)

// Enabled gates Debugf. cmd/musvgtool sets this from -d/--debug; it
// defaults to off so library callers never see debug output unless they
// opt in.
var Enabled bool

// Debugf writes a formatted line to stderr, prefixed "musvg: debug: ",
// when Enabled is true. A no-op otherwise.
func Debugf(format string, args ...interface{}) {
	if !Enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "musvg: debug: "+format+"\n", args...)
}
