package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/uncrr/locus/internal/address"
	"github.com/uncrr/locus/internal/schema"
)

// reportMetadata is the filesystem metadata section of an inspection [report].
type reportMetadata struct {
	Kind     string    `json:"kind"`
	Size     uint64    `json:"size"`
	Mode     string    `json:"mode"`
	Owner    string    `json:"owner"`
	Modified time.Time `json:"modified"`
	LinksTo  string    `json:"links_to,omitempty"`
}

// report is the full structured breakdown of one inspected address.
type report struct {
	Display    string          `json:"display"`
	Scheme     string          `json:"scheme"`
	Connection string          `json:"connection,omitempty"`
	Location   string          `json:"location"`
	Base       string          `json:"base"`
	Urn        string          `json:"urn"`
	Name       string          `json:"name"`
	Fragment   string          `json:"fragment,omitempty"`
	Hash       string          `json:"hash"`
	Parent     string          `json:"parent,omitempty"`
	Metadata   *reportMetadata `json:"metadata,omitempty"`

	addr address.URL
}

// buildReport parses a raw address into its structured breakdown, gathering
// filesystem metadata for locally addressable locations.
func (app *App) buildReport(raw string) (*report, error) {
	u, err := address.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("(app-report) %w", err)
	}

	r := &report{
		Display:    u.String(),
		Scheme:     u.Scheme().Kind().String(),
		Connection: u.Scheme().Name(),
		Location:   u.Loc().String(),
		Base:       u.Loc().Base(),
		Urn:        u.Loc().Urn().String(),
		Name:       u.Loc().Name(),
		Fragment:   u.Fragment(),
		Hash:       fmt.Sprintf("%016x", u.HashU64()),
		addr:       u,
	}

	if parent, ok := u.ParentURL(); ok {
		r.Parent = parent.String()
	}

	if path, ok := u.AsPath(); ok {
		if meta, err := app.fsHandler.Metadata(path); err == nil {
			r.Metadata = newReportMetadata(meta)
		}
	}

	return r, nil
}

// newReportMetadata maps gathered [schema.Metadata] into its report section.
func newReportMetadata(meta *schema.Metadata) *reportMetadata {
	kind := "file"
	switch {
	case meta.IsDir:
		kind = "directory"
	case meta.IsSymlink:
		kind = "symlink"
	}

	return &reportMetadata{
		Kind:     kind,
		Size:     meta.Size,
		Mode:     fmt.Sprintf("%04o", meta.Perms),
		Owner:    fmt.Sprintf("%d:%d", meta.UID, meta.GID),
		Modified: time.Unix(meta.ModifiedAt.Sec, meta.ModifiedAt.Nsec),
		LinksTo:  meta.SymlinkTo,
	}
}

// Text renders the report as an aligned human-readable block.
func (r *report) Text() string {
	var s strings.Builder

	fmt.Fprintf(&s, "%s\n", r.Display)
	fmt.Fprintf(&s, "  Scheme:    %s\n", r.Scheme)

	if r.Connection != "" {
		fmt.Fprintf(&s, "  Conn:      %s\n", r.Connection)
	}

	fmt.Fprintf(&s, "  Location:  %s\n", r.Location)
	fmt.Fprintf(&s, "  Base:      %s\n", r.Base)
	fmt.Fprintf(&s, "  Urn:       %s\n", r.Urn)
	fmt.Fprintf(&s, "  Name:      %s\n", r.Name)

	if r.Fragment != "" {
		fmt.Fprintf(&s, "  Fragment:  %s\n", r.Fragment)
	}

	fmt.Fprintf(&s, "  Hash:      %s\n", r.Hash)

	if r.Parent != "" {
		fmt.Fprintf(&s, "  Parent:    %s\n", r.Parent)
	}

	if meta := r.Metadata; meta != nil {
		fmt.Fprintf(&s, "  Kind:      %s\n", meta.Kind)
		fmt.Fprintf(&s, "  Size:      %s\n", humanize.Bytes(meta.Size))
		fmt.Fprintf(&s, "  Mode:      %s\n", meta.Mode)
		fmt.Fprintf(&s, "  Owner:     %s\n", meta.Owner)
		fmt.Fprintf(&s, "  Modified:  %s\n", humanize.Time(meta.Modified))

		if meta.LinksTo != "" {
			fmt.Fprintf(&s, "  Links to:  %s\n", meta.LinksTo)
		}
	}

	return s.String()
}
