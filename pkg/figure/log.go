package figure

import "github.com/go-logr/logr"

var log = logr.Discard()

// SetLogger sets the logger used while fitting strokes from files
func SetLogger(l logr.Logger) {
	log = l.WithName("figure")
}
