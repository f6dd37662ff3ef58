package history_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uncrr/locus/internal/address"
	"github.com/uncrr/locus/internal/history"
)

func TestRecord_MostRecentFirst(t *testing.T) {
	t.Parallel()

	store := history.NewStore(0)

	store.Record(address.Local("/a"))
	store.Record(address.Local("/b"))
	store.Record(address.Local("/c"))

	entries := store.Entries()

	require.Len(t, entries, 3)
	assert.Equal(t, "/c", entries[0].Address.String())
	assert.Equal(t, "/b", entries[1].Address.String())
	assert.Equal(t, "/a", entries[2].Address.String())
}

func TestRecord_RevisitMovesToFront(t *testing.T) {
	t.Parallel()

	store := history.NewStore(0)

	store.Record(address.Local("/a"))
	store.Record(address.Local("/b"))
	store.Record(address.Local("/a"))

	entries := store.Entries()

	require.Len(t, entries, 2)
	assert.Equal(t, "/a", entries[0].Address.String())
	assert.Equal(t, "/b", entries[1].Address.String())
}

func TestRecord_SearchItemCollapsesOntoFile(t *testing.T) {
	t.Parallel()

	store := history.NewStore(0)

	item := address.Local("/a").ToSearch("query").Join("x")
	store.Record(item)
	store.Record(address.Local("/a/x"))

	assert.Equal(t, 1, store.Len())

	entries := store.Entries()

	require.Len(t, entries, 1)
	assert.True(t, entries[0].Address.IsRegular())
	assert.Equal(t, "/a/x", entries[0].Address.String())
}

func TestRecord_SearchContainerStaysDistinct(t *testing.T) {
	t.Parallel()

	store := history.NewStore(0)

	store.Record(address.Local("/a"))
	store.Record(address.Local("/a").ToSearch("query"))

	assert.Equal(t, 2, store.Len())
}

func TestRecord_LimitEvictsOldest(t *testing.T) {
	t.Parallel()

	store := history.NewStore(2)

	store.Record(address.Local("/a"))
	store.Record(address.Local("/b"))
	store.Record(address.Local("/c"))

	entries := store.Entries()

	require.Len(t, entries, 2)
	assert.Equal(t, "/c", entries[0].Address.String())
	assert.Equal(t, "/b", entries[1].Address.String())
	assert.False(t, store.Contains(address.Local("/a")))
}

func TestContains_FollowsIdentity(t *testing.T) {
	t.Parallel()

	store := history.NewStore(0)

	store.Record(address.Local("/a").ToSearch("query").Join("x"))

	assert.True(t, store.Contains(address.Local("/a/x")))
	assert.False(t, store.Contains(address.Local("/a/y")))
	assert.False(t, store.Contains(address.Local("/a/x").ToSearch("query")))
}

func TestRemove_Success(t *testing.T) {
	t.Parallel()

	store := history.NewStore(0)

	store.Record(address.Local("/a").ToSearch("query").Join("x"))
	store.Record(address.Local("/b"))

	assert.True(t, store.Remove(address.Local("/a/x")))
	assert.Equal(t, 1, store.Len())
	assert.False(t, store.Contains(address.Local("/a/x")))
}

func TestRemove_Fail_Unknown(t *testing.T) {
	t.Parallel()

	store := history.NewStore(0)

	store.Record(address.Local("/a"))

	assert.False(t, store.Remove(address.Local("/b")))
	assert.Equal(t, 1, store.Len())
}

func TestLen_Empty(t *testing.T) {
	t.Parallel()

	store := history.NewStore(0)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Entries())
}

func TestStore_ConcurrentRecord(t *testing.T) {
	t.Parallel()

	store := history.NewStore(0)

	var wg sync.WaitGroup

	for worker := range 8 {
		wg.Add(1)

		go func(worker int) {
			defer wg.Done()

			for i := range 25 {
				store.Record(address.Local(fmt.Sprintf("/w%d/f%d", worker, i)))
				store.Contains(address.Local(fmt.Sprintf("/w%d/f%d", worker, i)))
			}
		}(worker)
	}

	wg.Wait()

	assert.Equal(t, 200, store.Len())
}
