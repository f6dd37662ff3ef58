package history

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/uncrr/locus/internal/address"
)

// snapshotVersion is bumped whenever the persisted layout changes shape.
const snapshotVersion = 1

// Addresses travel in their wire-text form, as CBOR byte strings through the
// URL binary marshalers; the rest is plain CBOR.
type snapshot struct {
	Version int             `cbor:"version"`
	SavedAt time.Time       `cbor:"saved_at"`
	Entries []snapshotEntry `cbor:"entries"`
}

type snapshotEntry struct {
	Address   address.URL `cbor:"address"`
	VisitedAt time.Time   `cbor:"visited_at"`
}

// Save writes a CBOR snapshot of the record to w, most recent first.
func (s *Store) Save(w io.Writer) error {
	s.RLock()
	defer s.RUnlock()

	snap := snapshot{
		Version: snapshotVersion,
		SavedAt: time.Now().UTC(),
		Entries: make([]snapshotEntry, 0, len(s.entries)),
	}

	for _, entry := range s.entries {
		snap.Entries = append(snap.Entries, snapshotEntry{
			Address:   entry.Address,
			VisitedAt: entry.VisitedAt,
		})
	}

	if err := cbor.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("(history-save) failed to encode: %w", err)
	}

	return nil
}

// Load replaces the record with a snapshot previously written by
// [Store.Save]. Entries sharing an identity merge by the usual rules, the
// retention limit applies as on live recording.
func (s *Store) Load(r io.Reader) error {
	var snap snapshot

	if err := cbor.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("(history-load) %w: %s", ErrBadSnapshot, err)
	}

	if snap.Version != snapshotVersion {
		return fmt.Errorf("(history-load) %w: version %d", ErrBadSnapshot, snap.Version)
	}

	s.Lock()
	defer s.Unlock()

	s.entries = nil
	s.buckets = make(map[uint64][]*Entry)

	for i := len(snap.Entries) - 1; i >= 0; i-- {
		s.record(snap.Entries[i].Address, snap.Entries[i].VisitedAt)
	}

	return nil
}
