package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE stories (id INTEGER PRIMARY KEY, title TEXT, channel TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "stories")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["title"])
	assert.Equal(t, "text", colMap["channel"])

	// PRAGMA table_info returns no rows for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE stories (id INTEGER PRIMARY KEY, title TEXT)").Error)

	missing, err := MissingColumns(db, "stories", []string{"id", "Title", "channel"})
	require.NoError(t, err)
	assert.Equal(t, []string{"channel"}, missing)

	missing, err = MissingColumns(db, "absent", []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}
