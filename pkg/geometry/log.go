package geometry

import "github.com/go-logr/logr"

var log = logr.Discard()

// SetLogger sets the logger used for solver diagnostics. The default discards everything.
func SetLogger(l logr.Logger) {
	log = l.WithName("geometry")
}
