// Package filesystem provides the metadata service and the existence-check
// helpers over local paths.
package filesystem

import (
	"golang.org/x/sys/unix"
)

type osProvider interface {
	Readlink(name string) (string, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation for filesystem interactions.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}
