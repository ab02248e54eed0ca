package sequel

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/amirrezaask/setadt/errors"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	QueryHV *prometheus.HistogramVec
}

type Interface interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, stmt string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(stmt string, args ...any) (sql.Result, error)
	BeginTx(ctx context.Context, options *sql.TxOptions) (*sql.Tx, error)
	Begin() (*sql.Tx, error)
	Driver() driver.Driver
	Close() error
	SetConnMaxLifetime(d time.Duration)
	SetConnMaxIdleTime(d time.Duration)
	SetMaxIdleConns(int)
	SetMaxOpenConns(int)
}

type DataSource struct {
	Driver                string
	Name                  string
	ConnectionString      string
	MetricsNamespace      string
	MaxOpenConnections    int
	MaxIdleConnections    int
	IdleConnectionTimeout time.Duration
	OpenConnectionTimeout time.Duration
}

const (
	SQLite = "sqlite3"
	MySQL  = "mysql"
)

// DriverName maps the driver behind s to SQLite, MySQL or "unknown".
func DriverName(s Interface) string {
	switch fmt.Sprintf("%T", s.Driver()) {
	case "*sqlite3.SQLiteDriver":
		return SQLite
	case "*mysql.MySQLDriver":
		return MySQL
	default:
		return "unknown"
	}
}

type database struct {
	Interface
	connectionName string
	metrics        *metrics
	debug          bool
}

func isDebug(s Interface) bool {
	if os.Getenv("SEQUEL_DBG") == "true" {
		return true
	}
	if our, isOurSql := s.(*database); isOurSql {
		return our.debug
	}

	return false
}

func New(ds DataSource) (Interface, error) {
	db, err := sql.Open(ds.Driver, ds.ConnectionString)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open %s connection %s", ds.Driver, ds.Name)
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot ping %s connection %s", ds.Driver, ds.Name)
	}

	db.SetConnMaxLifetime(ds.OpenConnectionTimeout)
	db.SetConnMaxIdleTime(ds.IdleConnectionTimeout)
	db.SetMaxIdleConns(ds.MaxIdleConnections)
	db.SetMaxOpenConns(ds.MaxOpenConnections)

	var hist *prometheus.HistogramVec
	if !testing.Testing() {
		hist = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ds.MetricsNamespace,
			Name:      fmt.Sprintf("%s_db_query_duration_seconds", ds.Name),
			Help:      "Database query durations by [dbName] [query]",
			Buckets: []float64{
				0.0005,
				0.001, // 1ms
				0.002,
				0.005,
				0.01, // 10ms
				0.02,
				0.05,
				0.1, // 100 ms
				0.2,
				0.5,
				1.0, // 1s
				2.0,
				5.0,
				10.0, // 10s
			},
		}, []string{"dbName", "goCall", "type", "table"})
	}

	return &database{
		Interface:      db,
		connectionName: ds.Name,
		metrics: &metrics{
			QueryHV: hist,
		},
	}, nil
}

var (
	selectRegex = regexp.MustCompile(`^\s*SELECT\s+.*\s+FROM\s+(\w+)\s*.*$`)
	insertRegex = regexp.MustCompile(`^\s*INSERT\s+INTO\s+(\w+)\s*.*$`)
	updateRegex = regexp.MustCompile(`^\s*UPDATE\s+(\w+)\s*SET\s+.*$`)
	deleteRegex = regexp.MustCompile(`^\s*DELETE\s+FROM\s+(\w+)\s*.*$`)
	createRegex = regexp.MustCompile(`^\s*CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?(\w+)\s*.*$`)
)

func extractQueryInfo(query string) (queryType, tableName string) {
	// Normalize the query by removing extra spaces and converting to uppercase.
	query = strings.TrimSpace(strings.ToUpper(query))

	for _, c := range []struct {
		kind string
		re   *regexp.Regexp
	}{
		{"SELECT", selectRegex},
		{"INSERT", insertRegex},
		{"UPDATE", updateRegex},
		{"DELETE", deleteRegex},
		{"CREATE", createRegex},
	} {
		if matches := c.re.FindStringSubmatch(query); matches != nil {
			return c.kind, matches[1]
		}
	}

	return "unknown", "unknown"
}

// Debug logs every statement run through i.
func Debug(i Interface) Interface {
	if db, ok := i.(*database); ok {
		debug := *db
		debug.debug = true
		return &debug
	}
	return &database{
		Interface: i,
		debug:     true,
	}
}

func (db *database) Exec(query string, args ...any) (sql.Result, error) {
	return db.ExecContext(context.Background(), query, args...)
}

func (db *database) Query(query string, args ...any) (*sql.Rows, error) {
	return db.QueryContext(context.Background(), query, args...)
}

func (db *database) timer(goCall, query string) *prometheus.Timer {
	if db.metrics == nil || db.metrics.QueryHV == nil {
		return nil
	}
	queryType, table := extractQueryInfo(query)
	return prometheus.NewTimer(db.metrics.QueryHV.WithLabelValues(db.connectionName, strings.ToLower(goCall), strings.ToLower(queryType), strings.ToLower(table)))
}

func (db *database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if isDebug(db) {
		slog.Debug("sequel exec", "connection", db.connectionName, "query", query)
	}
	timer := db.timer("ExecContext", query)
	res, err := db.Interface.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if timer != nil {
		timer.ObserveDuration()
	}
	return res, nil
}

func (db *database) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if isDebug(db) {
		slog.Debug("sequel query", "connection", db.connectionName, "query", query)
	}
	timer := db.timer("QueryContext", query)
	rows, err := db.Interface.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if timer != nil {
		timer.ObserveDuration()
	}
	return rows, nil
}
