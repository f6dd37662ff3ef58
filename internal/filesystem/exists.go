package filesystem

import (
	"errors"
	"io/fs"
)

// MustExist reports whether path certainly exists: only a successful
// metadata lookup counts.
func (f *Handler) MustExist(path string) bool {
	_, err := f.Metadata(path)

	return err == nil
}

// MaybeExist reports whether path could exist: any lookup outcome counts,
// except the entry being positively absent. An inconclusive failure, such as
// a permission error, is treated as existing.
func (f *Handler) MaybeExist(path string) bool {
	if _, err := f.Metadata(path); err != nil {
		return !errors.Is(err, fs.ErrNotExist)
	}

	return true
}
