// Package schema provides the shared schematics for all other packages. It
// defines the filesystem metadata structure and provides implementations for
// handling (Unix-based) operating system syscalls. The package serves as a
// foundational layer for filesystem interactions throughout the codebase.
package schema

import "golang.org/x/sys/unix"

// Metadata describes a filesystem entry as observed without following
// symbolic links.
type Metadata struct {
	Inode      uint64
	Perms      uint32
	UID        uint32
	GID        uint32
	AccessedAt unix.Timespec
	ModifiedAt unix.Timespec
	Size       uint64
	IsDir      bool
	IsSymlink  bool
	SymlinkTo  string
}
