package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/uncrr/locus/internal/filesystem"
	"github.com/uncrr/locus/internal/schema"
	"golang.org/x/sys/unix"
)

func TestExistenceChecks_PerOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		lstatErr   error
		mustExist  bool
		maybeExist bool
	}{
		{
			name:       "Found",
			lstatErr:   nil,
			mustExist:  true,
			maybeExist: true,
		},
		{
			name:       "NotFound",
			lstatErr:   unix.ENOENT,
			mustExist:  false,
			maybeExist: false,
		},
		{
			name:       "PermissionDenied",
			lstatErr:   unix.EACCES,
			mustExist:  false,
			maybeExist: true,
		},
		{
			name:       "IOError",
			lstatErr:   unix.EIO,
			mustExist:  false,
			maybeExist: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockUnix := new(mockUnixProvider)
			mockUnix.On("Lstat", "/probe", mock.AnythingOfType("*unix.Stat_t")).
				Return(tt.lstatErr)

			handler := filesystem.NewHandler(new(mockOSProvider), mockUnix)

			assert.Equal(t, tt.mustExist, handler.MustExist("/probe"))
			assert.Equal(t, tt.maybeExist, handler.MaybeExist("/probe"))
		})
	}
}

func TestExistenceChecks_RealFilesystem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist")

	handler := filesystem.NewHandler(&schema.OS{}, &schema.Unix{})

	assert.True(t, handler.MustExist(dir))
	assert.True(t, handler.MaybeExist(dir))
	assert.False(t, handler.MustExist(missing))
	assert.False(t, handler.MaybeExist(missing))
}
