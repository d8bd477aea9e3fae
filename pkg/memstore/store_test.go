package memstore

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string
	Name string
}

func (r record) RecordID() string { return r.ID }

func newStore() *Store[record] {
	return New([]record{
		{ID: "1", Name: "first"},
		{ID: "2", Name: "second"},
	})
}

func TestNewCopiesSeed(t *testing.T) {
	seed := []record{{ID: "1", Name: "first"}}
	store := New(seed)
	seed[0].Name = "mutated"

	got, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)
}

func TestInsertRunsCheckInCriticalSection(t *testing.T) {
	store := newStore()

	err := store.Insert(record{ID: "3"}, func(items []record) error {
		assert.Len(t, items, 2)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, store.Count())
}

func TestInsertRejectedByCheck(t *testing.T) {
	store := newStore()

	err := store.Insert(record{ID: "3"}, func([]record) error { return ErrConflict })
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 2, store.Count())
}

func TestUpdateMissingRecord(t *testing.T) {
	store := newStore()

	_, err := store.Update("nope", nil, func(r record) record { return r })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAppliesMutation(t *testing.T) {
	store := newStore()

	updated, err := store.Update("2", nil, func(r record) record {
		r.Name = "renamed"
		return r
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)

	got, _ := store.Get("2")
	assert.Equal(t, "renamed", got.Name)
}

func TestDeleteGuardRejects(t *testing.T) {
	store := newStore()
	guardErr := errors.New("protected")

	_, err := store.Delete("1", func(record) error { return guardErr })
	assert.ErrorIs(t, err, guardErr)
	assert.Equal(t, 2, store.Count())
}

func TestDeleteRemovesRecord(t *testing.T) {
	store := newStore()

	removed, err := store.Delete("1", nil)
	require.NoError(t, err)
	assert.Equal(t, "first", removed.Name)

	_, ok := store.Get("1")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Count())
}

func TestSnapshotIsACopy(t *testing.T) {
	store := newStore()

	snapshot := store.Snapshot()
	snapshot[0].Name = "mutated"

	got, _ := store.Get("1")
	assert.Equal(t, "first", got.Name)
}

func TestConcurrentInsertUniqueness(t *testing.T) {
	store := New([]record{})
	check := func(items []record) error {
		for _, existing := range items {
			if existing.Name == "dup" {
				return ErrConflict
			}
		}
		return nil
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- store.Insert(record{ID: string(rune('a' + i)), Name: "dup"}, check)
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	// 检查和写入共用一把锁，重复只可能成功一次
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, store.Count())
}
