package lists

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"model-storage/core/objectstore/mocks"
	"model-storage/core/section"
	"model-storage/core/update"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var defaultConfig = Config{SeedObject: "seed.json", SnapshotObject: "snap.json", Usage: "table"}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(nil, "lists", defaultConfig, zap.NewNop())
}

func titles(views []SectionView) [][]string {
	out := make([][]string, len(views))
	for i, v := range views {
		out[i] = []string{}
		for _, e := range v.Items {
			out[i] = append(out[i], e.Title)
		}
	}
	return out
}

func TestService_Add(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Add(1, []Input{{Title: "a"}, {Title: "b"}})
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	assert.False(t, res.Reload)
	require.NotNil(t, res.Update)
	assert.Equal(t, []int{0, 1}, res.Update.InsertedSections)
	assert.Equal(t, []update.IndexPath{update.Path(1, 0), update.Path(1, 1)}, res.Update.InsertedItems)

	assert.Equal(t, [][]string{{}, {"a", "b"}}, titles(svc.Sections()))

	_, err = svc.Add(0, []Input{{Title: ""}})
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = svc.Add(-1, []Input{{Title: "x"}})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestService_Insert(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Add(0, []Input{{Title: "a"}, {Title: "c"}})
	require.NoError(t, err)

	res, err := svc.Insert(update.Path(0, 1), Input{Title: "b"})
	require.NoError(t, err)
	assert.Equal(t, []update.IndexPath{update.Path(0, 1)}, res.Update.InsertedItems)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, titles(svc.Sections()))

	_, err = svc.Insert(update.Path(0, 9), Input{Title: "x"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestService_RemoveReplaceReload(t *testing.T) {
	svc := newTestService(t)
	added, err := svc.Add(0, []Input{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	require.NoError(t, err)
	a, b, c := added.Entries[0], added.Entries[1], added.Entries[2]

	res, err := svc.Replace(b.ID.String(), Input{Title: "B"})
	require.NoError(t, err)
	assert.Equal(t, []update.IndexPath{update.Path(0, 1)}, res.Update.UpdatedItems)
	assert.Equal(t, b.ID, res.Entries[0].ID)

	res, err = svc.Reload(c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []update.IndexPath{update.Path(0, 2)}, res.Update.UpdatedItems)

	res, err = svc.Remove([]string{a.ID.String(), c.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, []update.IndexPath{update.Path(0, 0), update.Path(0, 2)}, res.Update.DeletedItems)
	assert.Equal(t, [][]string{{"B"}}, titles(svc.Sections()))

	_, err = svc.Remove([]string{a.ID.String()})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Replace(a.ID.String(), Input{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Reload("not-an-id")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestService_Move(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Add(0, []Input{{Title: "a"}, {Title: "b"}})
	require.NoError(t, err)
	_, err = svc.Add(1, []Input{{Title: "c"}})
	require.NoError(t, err)

	res, err := svc.Move(update.Path(0, 0), update.Path(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []update.ItemMove{{From: update.Path(0, 0), To: update.Path(1, 1)}}, res.Update.MovedItems)
	assert.Equal(t, [][]string{{"b"}, {"c", "a"}}, titles(svc.Sections()))

	_, err = svc.Move(update.Path(3, 0), update.Path(0, 0))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Move(update.Path(0, 0), update.Path(1, 5))
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestService_SectionsAndHeaders(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Add(2, []Input{{Title: "a"}})
	require.NoError(t, err)

	res, err := svc.SetHeader(0, "Today")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Update.UpdatedSections)
	assert.Equal(t, "Today", svc.Sections()[0].Header)

	res, err = svc.SetItems(1, []Input{{Title: "x"}})
	require.NoError(t, err)
	assert.True(t, res.Reload)
	assert.Nil(t, res.Update)

	res, err = svc.DeleteSections([]int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res.Update.DeletedSections)
	assert.Equal(t, [][]string{{"x"}}, titles(svc.Sections()))

	_, err = svc.DeleteSections([]int{4})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CollectionUsage(t *testing.T) {
	svc := NewService(nil, "lists", Config{Usage: "collection"}, nil)
	assert.Equal(t, section.CollectionViewSectionHeader, svc.storage.HeaderKind())

	svc = NewService(nil, "lists", Config{Usage: "grid"}, nil)
	assert.Equal(t, section.TableViewSectionHeader, svc.storage.HeaderKind())
}

func TestService_Batch(t *testing.T) {
	svc := newTestService(t)
	added, err := svc.Add(0, []Input{{Title: "a"}, {Title: "b"}})
	require.NoError(t, err)

	res, err := svc.Batch([]BatchOp{
		{Op: OpRemove, ID: added.Entries[0].ID.String()},
		{Op: OpAdd, Section: 0, Entry: Input{Title: "c"}},
		{Op: OpHeader, Section: 0, Header: "Inbox"},
		{Op: OpInsert, Path: update.Path(1, 0), Entry: Input{Title: "d"}},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Update)
	assert.Len(t, res.Entries, 2)
	assert.Equal(t, [][]string{{"b", "c"}, {"d"}}, titles(svc.Sections()))

	before := [][]string{{"a", "b"}}
	after := titles(svc.Sections())
	got, err := update.Apply(before, res.Update, func(p update.IndexPath) (string, bool) {
		if p.Section >= len(after) || p.Item >= len(after[p.Section]) {
			return "", false
		}
		return after[p.Section][p.Item], true
	})
	require.NoError(t, err)
	assert.Equal(t, after, got)

	t.Run("Validation happens first", func(t *testing.T) {
		_, err := svc.Batch([]BatchOp{
			{Op: OpAdd, Section: 0, Entry: Input{Title: "e"}},
			{Op: "explode"},
		})
		assert.ErrorIs(t, err, ErrBadRequest)
		assert.Equal(t, [][]string{{"b", "c"}, {"d"}}, titles(svc.Sections()))
	})

	t.Run("Empty batch delivers empty update", func(t *testing.T) {
		res, err := svc.Batch(nil)
		require.NoError(t, err)
		require.NotNil(t, res.Update)
		assert.True(t, res.Update.IsEmpty())
	})
}

func TestService_Search(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Add(0, []Input{{Title: "Crème brûlée", Detail: "dessert"}, {Title: "Soup"}})
	require.NoError(t, err)
	_, err = svc.Add(1, []Input{{Title: "Bread", Detail: "bakery"}})
	require.NoError(t, err)

	got := svc.Search("creme", ScopeTitle)
	assert.Equal(t, [][]string{{"Crème brûlée"}}, titles(got))

	got = svc.Search("bkry", ScopeFuzzy)
	assert.Equal(t, [][]string{{"Bread"}}, titles(got))

	assert.Len(t, svc.Search("", ScopeTitle), 2)
	assert.Empty(t, svc.Search("zzz", ScopeTitle))
}

func TestService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		assert.NoError(t, newTestService(t).Seed(ctx))
	})

	t.Run("Loads document", func(t *testing.T) {
		doc := `{"sections":[{"header":"Fruit","items":[{"title":"apple"},{"title":"pear"}]},{"items":[]}]}`
		m := new(mocks.Client)
		m.On("GetObject", ctx, "lists", "seed.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(doc))), nil)

		svc := NewService(m, "lists", defaultConfig, zap.NewNop())
		require.NoError(t, svc.Seed(ctx))

		views := svc.Sections()
		assert.Equal(t, [][]string{{"apple", "pear"}, {}}, titles(views))
		assert.Equal(t, "Fruit", views[0].Header)
		assert.Nil(t, views[1].Header)
		assert.NotEqual(t, views[0].Items[0].ID, views[0].Items[1].ID)
		assert.Equal(t, 0, svc.recorder.Len())
	})

	t.Run("Missing object", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "lists", "seed.json", mock.Anything).Return(nil, errors.New("no such key"))

		svc := NewService(m, "lists", defaultConfig, zap.NewNop())
		assert.ErrorContains(t, svc.Seed(ctx), "no such key")
	})
}

func TestService_Snapshot(t *testing.T) {
	ctx := context.Background()

	_, err := newTestService(t).Snapshot(ctx)
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, err, ErrBadRequest)

	var written []byte
	m := new(mocks.Client)
	m.On("BucketExists", ctx, "lists").Return(true, nil)
	m.On("PutObject", ctx, "lists", "snap.json", mock.Anything, mock.Anything, minio.PutObjectOptions{ContentType: "application/json"}).
		Run(func(args mock.Arguments) {
			written, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	svc := NewService(m, "lists", defaultConfig, zap.NewNop())
	_, err = svc.Add(0, []Input{{Title: "a"}})
	require.NoError(t, err)
	_, err = svc.SetHeader(0, "Head")
	require.NoError(t, err)

	object, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "snap.json", object)

	var doc Document
	require.NoError(t, json.Unmarshal(written, &doc))
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Head", doc.Sections[0].Header)
	assert.Equal(t, "a", doc.Sections[0].Items[0].Title)

	res := svc.Load(doc)
	assert.True(t, res.Reload)
	assert.Equal(t, [][]string{{"a"}}, titles(svc.Sections()))
}
