package sink

import (
	"context"

	"github.com/amirrezaask/setadt/errors"
	"github.com/amirrezaask/setadt/sequel"
)

// SQL keeps the content as one row of the setsink_store table, keyed by
// namespace. The table is created when missing.
type SQL struct {
	db        sequel.Interface
	namespace string
	driver    string
}

func NewSQL(ctx context.Context, db sequel.Interface, namespace string) (*SQL, error) {
	driver := sequel.DriverName(db)

	var createTable string
	switch driver {
	case sequel.MySQL:
		createTable = "CREATE TABLE IF NOT EXISTS setsink_store (" +
			"namespace VARCHAR(255) NOT NULL PRIMARY KEY," +
			"`value` LONGTEXT NOT NULL," +
			"updated_at DATETIME" +
			");"
	case sequel.SQLite:
		createTable = "CREATE TABLE IF NOT EXISTS setsink_store (" +
			"namespace TEXT NOT NULL PRIMARY KEY," +
			"`value` TEXT NOT NULL," +
			"updated_at DATETIME" +
			");"
	default:
		return nil, errors.Newf("error in creating sql sink, unsupported database driver: %s", driver)
	}

	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return nil, errors.Wrap(err, "error in creating table setsink_store")
	}

	return &SQL{
		db:        db,
		namespace: namespace,
		driver:    driver,
	}, nil
}

func (s *SQL) Get(ctx context.Context) ([]byte, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT `value` FROM setsink_store WHERE namespace = ?", s.namespace)
	if err != nil {
		return nil, errors.Wrap(err, "error in querying setsink_store for namespace '%s'", s.namespace)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, errors.Wrap(err, "error in reading setsink_store rows")
		}
		return nil, ErrNotExist
	}

	var value string
	if err := rows.Scan(&value); err != nil {
		return nil, errors.Wrap(err, "cannot scan setsink_store value for namespace '%s'", s.namespace)
	}
	return []byte(value), nil
}

func (s *SQL) Store(ctx context.Context, data []byte) error {
	var query string
	switch s.driver {
	case sequel.MySQL:
		query = "INSERT INTO setsink_store (namespace, `value`, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) " +
			"ON DUPLICATE KEY UPDATE `value` = VALUES(`value`), updated_at = VALUES(updated_at);"
	case sequel.SQLite:
		query = "INSERT INTO setsink_store (namespace, `value`, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) " +
			"ON CONFLICT(namespace) DO UPDATE SET `value` = excluded.`value`, updated_at = excluded.updated_at;"
	default:
		return errors.Newf("unsupported driver '%s'", s.driver)
	}

	_, err := s.db.ExecContext(ctx, query, s.namespace, string(data))
	return errors.Wrap(err, "error in upserting setsink_store for namespace '%s'", s.namespace)
}

func (s *SQL) String() string { return "sql:" + s.namespace }
