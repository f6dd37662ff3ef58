package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildReport_Regular ensures a local file resolves into a full breakdown
// with its filesystem metadata attached.
func TestBuildReport_Regular(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(file, []byte("1234567"), 0o644))

	app, _ := newTestApp(nil, false, false)

	report, err := app.buildReport(file)
	require.NoError(t, err)

	assert.Equal(t, file, report.Display)
	assert.Equal(t, "regular", report.Scheme)
	assert.Empty(t, report.Connection)
	assert.Equal(t, dir, report.Base)
	assert.Equal(t, "data.txt", report.Urn)
	assert.Equal(t, "data.txt", report.Name)
	assert.Empty(t, report.Fragment)
	assert.Regexp(t, "^[0-9a-f]{16}$", report.Hash)
	assert.Equal(t, dir, report.Parent)

	require.NotNil(t, report.Metadata, "a present file should carry metadata")
	assert.Equal(t, "file", report.Metadata.Kind)
	assert.Equal(t, uint64(7), report.Metadata.Size)
	assert.Equal(t, "0644", report.Metadata.Mode)
}

// TestBuildReport_PerScheme ensures the non-regular backends resolve into the
// expected breakdown fields.
func TestBuildReport_PerScheme(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(nil, false, false)

	testCases := []struct {
		name       string
		input      string
		scheme     string
		connection string
		fragment   string
		parent     string
	}{
		{"Search", "search:///srv/media#flac", "search", "", "flac", "search:///srv"},
		{"Archive", "archive:///backups/photos.zip", "archive", "", "", "/backups"},
		{"Sftp", "sftp://box-1//home/user/notes", "sftp", "box-1", "", "sftp://box-1//home/user"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			report, err := app.buildReport(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.scheme, report.Scheme, "scheme mismatch")
			assert.Equal(t, tc.connection, report.Connection, "connection mismatch")
			assert.Equal(t, tc.fragment, report.Fragment, "fragment mismatch")
			assert.Equal(t, tc.parent, report.Parent, "parent mismatch")
			assert.Nil(t, report.Metadata, "no metadata should be gathered off the local filesystem")
		})
	}
}

// TestBuildReport_Fail ensures unusable addresses surface an error.
func TestBuildReport_Fail(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(nil, false, false)

	_, err := app.buildReport("ftp://remote/x")
	require.Error(t, err, "an unknown scheme should not resolve")
}

// TestReportText_Sections ensures the rendered text block carries the
// breakdown and metadata sections.
func TestReportText_Sections(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(target, []byte("content"), 0o600))
	require.NoError(t, os.Symlink(target, link))

	app, _ := newTestApp(nil, false, false)

	report, err := app.buildReport(link)
	require.NoError(t, err)

	text := report.Text()

	assert.Contains(t, text, "Scheme:    regular")
	assert.Contains(t, text, "Hash:      ")
	assert.Contains(t, text, "Kind:      symlink")
	assert.Contains(t, text, "Links to:  "+target)
}
