package memory_test

import (
	"testing"

	"model-storage/core/memory"
	"model-storage/core/notify"
	"model-storage/core/update"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seeded returns a storage holding sections and a recorder that has not seen
// the seeding batch.
func seeded(t *testing.T, sections ...[]any) (*memory.Storage, *notify.Recorder) {
	t.Helper()
	st := memory.New()
	rec := &notify.Recorder{}
	st.SetNotifier(rec)
	for i, items := range sections {
		st.AddItems(items, i)
		if len(items) == 0 {
			st.MoveSection(i, i)
		}
	}
	require.Equal(t, len(sections), st.NumberOfSections())
	rec.Take()
	return st, rec
}

// onlyUpdate asserts that exactly one incremental update was delivered.
func onlyUpdate(t *testing.T, rec *notify.Recorder) *update.Update {
	t.Helper()
	deliveries := rec.Take()
	require.Len(t, deliveries, 1)
	require.False(t, deliveries[0].Reload, "unexpected reload")
	require.NotNil(t, deliveries[0].Update)
	return deliveries[0].Update
}

// requireRoundTrip replays u against before and compares the result with the
// storage's current content.
func requireRoundTrip(t *testing.T, before [][]any, u *update.Update, st *memory.Storage) {
	t.Helper()
	got, err := update.Apply(before, u, st.ItemAt)
	require.NoError(t, err, "update:\n%s", u)
	assert.Equal(t, normalize(st.Snapshot()), normalize(got), "update:\n%s", u)
}

func normalize(sections [][]any) [][]any {
	out := make([][]any, len(sections))
	for i, items := range sections {
		out[i] = append([]any{}, items...)
	}
	return out
}
