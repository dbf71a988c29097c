package memory_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"model-storage/core/memory"
	"model-storage/core/update"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_ImplicitBatches(t *testing.T) {
	st, rec := seeded(t)
	st.AddItem("a", 0)
	st.AddItem("b", 0)
	assert.Equal(t, 2, rec.Len())
	assert.False(t, st.InBatch())
}

func TestStorage_ExplicitScope(t *testing.T) {
	t.Run("TenMutationsOneDelivery", func(t *testing.T) {
		st, rec := seeded(t, []any{"a", "b"})
		before := st.Snapshot()

		end := st.BeginUpdates()
		for i := range 10 {
			st.AddItem(fmt.Sprintf("n%d", i), i%3)
		}
		assert.Equal(t, 0, rec.Len())
		assert.True(t, st.InBatch())
		end()

		u := onlyUpdate(t, rec)
		requireRoundTrip(t, before, u, st)
	})

	t.Run("TenMutationsWithSetItemsReloadOnce", func(t *testing.T) {
		st, rec := seeded(t, []any{"a"})
		err := st.PerformUpdates(func() error {
			for i := range 9 {
				st.AddItem(i, 0)
			}
			st.SetItems([]any{"x"}, 1)
			return nil
		})
		require.NoError(t, err)

		deliveries := rec.Take()
		require.Len(t, deliveries, 1)
		assert.True(t, deliveries[0].Reload)
	})

	t.Run("EmptyScopeStillDelivers", func(t *testing.T) {
		st, rec := seeded(t)
		require.NoError(t, st.PerformUpdates(func() error { return nil }))

		u := onlyUpdate(t, rec)
		assert.True(t, u.IsEmpty())
	})

	t.Run("EndIsIdempotent", func(t *testing.T) {
		st, rec := seeded(t)
		end := st.BeginUpdates()
		st.AddItem("a", 0)
		end()
		end()
		assert.Equal(t, 1, rec.Len())
	})

	t.Run("NestedScopesDeliverOnce", func(t *testing.T) {
		st, rec := seeded(t)
		err := st.PerformUpdates(func() error {
			st.AddItem("a", 0)
			return st.PerformUpdates(func() error {
				st.AddItem("b", 0)
				return nil
			})
		})
		require.NoError(t, err)

		u := onlyUpdate(t, rec)
		assert.Equal(t, []update.IndexPath{p(0, 0), p(0, 1)}, u.InsertedItems)
	})

	t.Run("ErrorStillDelivers", func(t *testing.T) {
		st, rec := seeded(t)
		boom := errors.New("boom")
		err := st.PerformUpdates(func() error {
			st.AddItem("a", 0)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		u := onlyUpdate(t, rec)
		assert.Equal(t, []update.IndexPath{p(0, 0)}, u.InsertedItems)
		assert.False(t, st.InBatch())
	})

	t.Run("PanicStillDelivers", func(t *testing.T) {
		st, rec := seeded(t)
		assert.Panics(t, func() {
			_ = st.PerformUpdates(func() error {
				st.AddItem("a", 0)
				panic("boom")
			})
		})

		u := onlyUpdate(t, rec)
		assert.Equal(t, []update.IndexPath{p(0, 0)}, u.InsertedItems)
		assert.False(t, st.InBatch())
	})
}

func TestStorage_RandomBatchesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	next := 0
	newItem := func() string {
		next++
		return fmt.Sprintf("item-%d", next)
	}

	for round := range 300 {
		sections := make([][]any, 1+rng.IntN(3))
		for s := range sections {
			for range rng.IntN(5) {
				sections[s] = append(sections[s], newItem())
			}
		}
		st, rec := seeded(t, sections...)
		before := st.Snapshot()

		var ops []string
		err := st.PerformUpdates(func() error {
			for range 1 + rng.IntN(10) {
				ops = append(ops, randomMutation(rng, st, newItem))
			}
			return nil
		})
		require.NoError(t, err)

		u := onlyUpdate(t, rec)
		got, err := update.Apply(before, u, st.ItemAt)
		require.NoError(t, err, "round %d ops %v\n%s", round, ops, u)
		require.Equal(t, normalize(st.Snapshot()), normalize(got), "round %d ops %v\n%s", round, ops, u)
	}
}

func randomMutation(rng *rand.Rand, st *memory.Storage, newItem func() string) string {
	n := st.NumberOfSections()
	randomPath := func(extra int) update.IndexPath {
		if n == 0 {
			return p(0, 0)
		}
		s := rng.IntN(n)
		sec, _ := st.Section(s)
		count := sec.NumberOfItems() + extra
		if count == 0 {
			return p(s, 0)
		}
		return p(s, rng.IntN(count))
	}
	randomItem := func() (any, bool) {
		if n == 0 {
			return nil, false
		}
		path := randomPath(0)
		if sec, _ := st.Section(path.Section); sec.NumberOfItems() == 0 {
			return nil, false
		}
		return st.ItemAt(path)
	}

	switch rng.IntN(9) {
	case 0:
		s := rng.IntN(n + 2)
		st.AddItem(newItem(), s)
		return fmt.Sprintf("add %d", s)
	case 1:
		at := randomPath(2)
		st.InsertItem(newItem(), at)
		return fmt.Sprintf("insert %s", at)
	case 2:
		item, ok := randomItem()
		if !ok {
			return "remove none"
		}
		st.RemoveItem(item)
		return fmt.Sprintf("remove %v", item)
	case 3:
		paths := []update.IndexPath{randomPath(1), randomPath(1)}
		st.RemoveItemsAt(paths)
		return fmt.Sprintf("removeAt %v", paths)
	case 4:
		item, ok := randomItem()
		if !ok {
			return "replace none"
		}
		st.ReplaceItem(item, newItem())
		return fmt.Sprintf("replace %v", item)
	case 5:
		item, ok := randomItem()
		if !ok {
			return "reload none"
		}
		st.ReloadItem(item)
		return fmt.Sprintf("reload %v", item)
	case 6:
		from, to := randomPath(1), randomPath(1)
		st.MoveItem(from, to)
		return fmt.Sprintf("move %s -> %s", from, to)
	case 7:
		from, to := rng.IntN(n+1), rng.IntN(n+1)
		st.MoveSection(from, to)
		return fmt.Sprintf("moveSection %d -> %d", from, to)
	default:
		if n == 0 {
			return "deleteSection none"
		}
		s := rng.IntN(n)
		st.DeleteSections([]int{s})
		return fmt.Sprintf("deleteSection %d", s)
	}
}
