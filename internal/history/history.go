// Package history keeps a recency-ordered record of visited addresses. The
// record is keyed by address identity, so re-visiting a resource moves its
// entry to the front instead of growing the record, and a search-result item
// collapses onto the plain file at the same location. Records survive
// restarts through CBOR snapshots.
package history

import (
	"slices"
	"sync"
	"time"

	"github.com/uncrr/locus/internal/address"
)

// Entry is one visited address together with the time of its latest visit.
type Entry struct {
	Address   address.URL
	VisitedAt time.Time
}

// Store is a visited-address record, most recent first. Identity follows
// the address equality contract: entries are bucketed by their 64-bit hash,
// with collisions resolved through full equality.
type Store struct {
	sync.RWMutex

	limit   int
	entries []*Entry
	buckets map[uint64][]*Entry
}

// NewStore returns a pointer to a new [Store], retaining at most limit
// entries; a limit of zero retains all.
func NewStore(limit int) *Store {
	return &Store{
		limit:   limit,
		buckets: make(map[uint64][]*Entry),
	}
}

// Record notes a visit of u, moving it to the front of the record. A prior
// entry with the same identity is refreshed rather than duplicated; the
// oldest entry falls off when the retention limit is exceeded.
func (s *Store) Record(u address.URL) {
	s.Lock()
	defer s.Unlock()

	s.record(u, time.Now().UTC())
}

// Contains reports whether an address with the same identity as u has been
// recorded.
func (s *Store) Contains(u address.URL) bool {
	s.RLock()
	defer s.RUnlock()

	return s.lookup(u.HashU64(), u) != nil
}

// Remove drops the entry with the same identity as u, reporting whether one
// existed.
func (s *Store) Remove(u address.URL) bool {
	s.Lock()
	defer s.Unlock()

	entry := s.lookup(u.HashU64(), u)
	if entry == nil {
		return false
	}

	s.drop(entry)

	return true
}

// Entries returns a copy of the record, most recent visit first.
func (s *Store) Entries() []Entry {
	s.RLock()
	defer s.RUnlock()

	entries := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, *entry)
	}

	return entries
}

// Len returns the number of recorded entries.
func (s *Store) Len() int {
	s.RLock()
	defer s.RUnlock()

	return len(s.entries)
}

// record requires s to be locked by the caller.
func (s *Store) record(u address.URL, at time.Time) {
	key := u.HashU64()

	if existing := s.lookup(key, u); existing != nil {
		existing.Address = u
		existing.VisitedAt = at

		if idx := slices.Index(s.entries, existing); idx > 0 {
			s.entries = slices.Delete(s.entries, idx, idx+1)
			s.entries = slices.Insert(s.entries, 0, existing)
		}

		return
	}

	entry := &Entry{Address: u, VisitedAt: at}
	s.entries = slices.Insert(s.entries, 0, entry)
	s.buckets[key] = append(s.buckets[key], entry)

	if s.limit > 0 && len(s.entries) > s.limit {
		s.drop(s.entries[len(s.entries)-1])
	}
}

// lookup requires s to be locked by the caller.
func (s *Store) lookup(key uint64, u address.URL) *Entry {
	for _, entry := range s.buckets[key] {
		if entry.Address.Equal(u) {
			return entry
		}
	}

	return nil
}

// drop requires s to be locked by the caller.
func (s *Store) drop(entry *Entry) {
	if idx := slices.Index(s.entries, entry); idx >= 0 {
		s.entries = slices.Delete(s.entries, idx, idx+1)
	}

	key := entry.Address.HashU64()

	bucket := slices.DeleteFunc(s.buckets[key], func(e *Entry) bool {
		return e == entry
	})

	if len(bucket) == 0 {
		delete(s.buckets, key)
	} else {
		s.buckets[key] = bucket
	}
}
