package sequel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQueryInfo(t *testing.T) {
	cases := []struct {
		query, kind, table string
	}{
		{"SELECT `value` FROM setsink_store WHERE namespace = ?", "SELECT", "SETSINK_STORE"},
		{"INSERT INTO setsink_store (namespace) VALUES (?)", "INSERT", "SETSINK_STORE"},
		{"CREATE TABLE IF NOT EXISTS setsink_store (namespace TEXT)", "CREATE", "SETSINK_STORE"},
		{"PRAGMA journal_mode", "unknown", "unknown"},
	}
	for _, c := range cases {
		t.Run(c.query, func(t *testing.T) {
			kind, table := extractQueryInfo(c.query)
			assert.Equal(t, c.kind, kind)
			assert.Equal(t, c.table, table)
		})
	}
}

type note struct {
	ID   int64
	Body string
}

func TestMockDb(t *testing.T) {
	t.Run("should be a sqlite database with models migrated", func(t *testing.T) {
		a := assert.New(t)
		db := NewMockDb(t, &note{})
		a.Equal(SQLite, DriverName(db))

		_, err := db.Exec("INSERT INTO notes (body) VALUES (?)", "hello")
		a.NoError(err)

		var n int64
		a.NoError(db.Gorm.Table("notes").Count(&n).Error)
		a.Equal(int64(1), n)
	})

	t.Run("debug wrapper should keep working", func(t *testing.T) {
		a := assert.New(t)
		db := Debug(NewMockDb(t, &note{}))
		rows, err := db.Query("SELECT id FROM notes")
		a.NoError(err)
		a.NoError(rows.Close())
	})

	t.Run("debug keeps the connection it wraps", func(t *testing.T) {
		a := assert.New(t)
		db := &database{Interface: NewMockDb(t), connectionName: "setdemo"}
		debug := Debug(db)
		a.True(isDebug(debug))
		a.False(isDebug(db))
		a.Equal("setdemo", debug.(*database).connectionName)
	})
}
