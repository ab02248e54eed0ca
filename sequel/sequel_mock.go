package sequel

import (
	"database/sql"
	"fmt"
	"testing"

	gormSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/google/uuid"
)

// MockDb is a private in-memory sqlite database for tests. Gorm shares its
// connection pool and is handy for inspecting what the code under test wrote.
type MockDb struct {
	Interface
	Gorm *gorm.DB
}

func testNoError(t *testing.T, err error, msg string, args ...any) {
	if err != nil {
		t.Logf("Error: %s, expected no error but %s", fmt.Sprintf(msg, args...), err.Error())
		t.FailNow()
	}
}

// NewMockDb opens the database and auto migrates models into it.
func NewMockDb(t *testing.T, models ...any) *MockDb {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sql.Open(SQLite, dsn)
	testNoError(t, err, "cannot open sqlite3 connection from NewMockDb")
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(gormSqlite.New(gormSqlite.Config{
		Conn: db,
	}))
	testNoError(t, err, "cannot create gorm object")
	testNoError(t, gormDB.AutoMigrate(models...), "cannot auto migrate")

	return &MockDb{
		Interface: &database{Interface: db, connectionName: t.Name()},
		Gorm:      gormDB,
	}
}
