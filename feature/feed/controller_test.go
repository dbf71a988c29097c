package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"model-storage/core/database"
	"model-storage/core/fetched"
	"model-storage/core/notify"
	"model-storage/core/update"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Table("stories").AutoMigrate(&Story{}))
	return db
}

func seed(t *testing.T, db *gorm.DB, stories ...Story) {
	t.Helper()
	for _, s := range stories {
		require.NoError(t, db.Table("stories").Create(&s).Error)
	}
}

func titlesOf(st *fetched.Storage) [][]string {
	snap := st.Snapshot()
	out := make([][]string, len(snap))
	for i, items := range snap {
		out[i] = []string{}
		for _, item := range items {
			out[i] = append(out[i], item.(Story).Title)
		}
	}
	return out
}

type harness struct {
	db         *gorm.DB
	controller *Controller
	storage    *fetched.Storage
	recorder   *notify.Recorder
}

func newHarness(t *testing.T) *harness {
	db := newDB(t)
	c := NewController(db, "stories", nil)
	st := fetched.NewStorage(c)
	rec := &notify.Recorder{}
	st.SetNotifier(rec)
	c.SetListener(st.Listener())
	return &harness{db: db, controller: c, storage: st, recorder: rec}
}

// refresh runs the controller and checks the delivered update replays the
// previous content into the new one.
func (h *harness) refresh(t *testing.T) *update.Update {
	t.Helper()
	before := titlesOf(h.storage)
	require.NoError(t, h.controller.Refresh(context.Background()))
	after := titlesOf(h.storage)

	d := h.recorder.Take()
	if len(d) == 0 {
		assert.Equal(t, before, after)
		return nil
	}
	require.Len(t, d, 1)
	require.False(t, d[0].Reload)

	got, err := update.Apply(before, d[0].Update, func(p update.IndexPath) (string, bool) {
		if p.Section >= len(after) || p.Item >= len(after[p.Section]) {
			return "", false
		}
		return after[p.Section][p.Item], true
	})
	require.NoError(t, err)
	assert.Equal(t, after, got)
	return d[0].Update
}

func TestController_Refresh(t *testing.T) {
	h := newHarness(t)
	seed(t, h.db,
		Story{ID: 1, Channel: "news", Title: "a", Position: 1},
		Story{ID: 2, Channel: "news", Title: "b", Position: 2},
		Story{ID: 3, Channel: "sport", Title: "c", Position: 1},
	)

	u := h.refresh(t)
	require.NotNil(t, u)
	assert.Equal(t, []int{0, 1}, u.InsertedSections)
	assert.Len(t, u.InsertedItems, 3)
	assert.Equal(t, "news", h.storage.SupplementaryModel("table-view-section-header", 0))

	t.Run("Unchanged result delivers nothing", func(t *testing.T) {
		assert.Nil(t, h.refresh(t))
	})

	t.Run("Title change is an update", func(t *testing.T) {
		require.NoError(t, h.db.Table("stories").Where("id = ?", 2).Update("title", "B").Error)
		u := h.refresh(t)
		require.NotNil(t, u)
		assert.Equal(t, []update.IndexPath{update.Path(0, 1)}, u.UpdatedItems)
	})

	t.Run("Reorder is a move", func(t *testing.T) {
		require.NoError(t, h.db.Table("stories").Where("id = ?", 1).Update("position", 5).Error)
		u := h.refresh(t)
		require.NotNil(t, u)
		assert.Len(t, u.MovedItems, 1)
		assert.Equal(t, [][]string{{"B", "a"}, {"c"}}, titlesOf(h.storage))
	})

	t.Run("Channel change moves across sections", func(t *testing.T) {
		require.NoError(t, h.db.Table("stories").Where("id = ?", 3).Update("channel", "news").Error)
		seed(t, h.db, Story{ID: 4, Channel: "tech", Title: "d", Position: 1})
		u := h.refresh(t)
		require.NotNil(t, u)
		assert.Equal(t, []int{1}, u.DeletedSections)
		assert.Equal(t, []int{1}, u.InsertedSections)
	})

	t.Run("Deleted rows", func(t *testing.T) {
		require.NoError(t, h.db.Table("stories").Where("id IN ?", []uint{1, 4}).Delete(&Story{}).Error)
		u := h.refresh(t)
		require.NotNil(t, u)
		assert.Equal(t, []int{1}, u.DeletedSections)
		assert.Len(t, u.DeletedItems, 1)
	})
}

func TestController_RefreshShuffles(t *testing.T) {
	h := newHarness(t)
	for i := 1; i <= 8; i++ {
		channel := []string{"a", "b", "c"}[i%3]
		seed(t, h.db, Story{ID: uint(i), Channel: channel, Title: string(rune('a' + i)), Position: i})
	}
	h.refresh(t)

	moves := []struct {
		id       uint
		channel  string
		position int
	}{
		{1, "c", 0}, {5, "a", 9}, {7, "d", 1}, {2, "d", 0}, {8, "b", -1}, {3, "a", 3},
	}
	for _, m := range moves {
		err := h.db.Table("stories").Where("id = ?", m.id).
			Updates(map[string]any{"channel": m.channel, "position": m.position, "updated_at": time.Now()}).Error
		require.NoError(t, err)
		h.refresh(t)
	}
}

func TestController_WithSQLMock(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := database.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), time.Second)
	require.NoError(t, err)

	rows := sqlmock.NewRows(Columns).
		AddRow(1, "news", "a", 1, time.Unix(0, 0)).
		AddRow(2, "sport", "b", 1, time.Unix(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM `stories` ORDER BY channel ASC").WillReturnRows(rows)
	mock.ExpectQuery("SELECT (.+) FROM `stories`").WillReturnError(errors.New("connection lost"))

	c := NewController(db, "stories", nil)
	require.NoError(t, c.Refresh(context.Background()))
	require.Len(t, c.Sections(), 2)
	assert.Equal(t, "sport", c.Sections()[1].Name)

	err = c.Refresh(context.Background())
	assert.ErrorContains(t, err, "failed to fetch stories")
	assert.Len(t, c.Sections(), 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestController_NoDatabase(t *testing.T) {
	assert.Error(t, NewController(nil, "stories", nil).Refresh(context.Background()))
}

func TestIncreasingRun(t *testing.T) {
	tests := []struct {
		values []int
		want   int
	}{
		{nil, 0},
		{[]int{0, 1, 2}, 3},
		{[]int{2, 1, 0}, 1},
		{[]int{1, 0, 2, 3}, 3},
		{[]int{3, 0, 1, 2}, 3},
	}
	for _, tt := range tests {
		run := increasingRun(tt.values)
		count, last := 0, -1
		for i, in := range run {
			if in {
				count++
				assert.Greater(t, tt.values[i], last)
				last = tt.values[i]
			}
		}
		assert.Equal(t, tt.want, count, "%v", tt.values)
	}
}
