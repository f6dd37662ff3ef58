package filesystem

import (
	"fmt"

	"github.com/uncrr/locus/internal/schema"
	"golang.org/x/sys/unix"
)

// Metadata retrieves [schema.Metadata] for a path without following symbolic
// links; a symbolic link reports on the link itself, with its target read
// for diagnostic purposes only.
func (f *Handler) Metadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-meta) failed to lstat: %w", err)
	}

	metadata := &schema.Metadata{
		Inode:      stat.Ino,
		Perms:      (uint32(stat.Mode) & 0o777),
		UID:        stat.Uid,
		GID:        stat.Gid,
		AccessedAt: stat.Atim,
		ModifiedAt: stat.Mtim,
		Size:       uint64(stat.Size),
		IsDir:      (stat.Mode & unix.S_IFMT) == unix.S_IFDIR,
		IsSymlink:  (stat.Mode & unix.S_IFMT) == unix.S_IFLNK,
	}

	if metadata.IsSymlink {
		symlinkTarget, err := f.osHandler.Readlink(path)
		if err != nil {
			return nil, fmt.Errorf("(fs-meta) failed to read symlink: %w", err)
		}

		metadata.SymlinkTo = symlinkTarget
	}

	return metadata, nil
}
