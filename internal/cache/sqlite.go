package cache

import (
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/alexzavalny/chessstats/internal/logger"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const schema = `
CREATE TABLE IF NOT EXISTS responses (
    url         TEXT PRIMARY KEY,
    body        BLOB NOT NULL,
    captured_at INTEGER NOT NULL
);
`

// SQLite is a Store persisted to a SQLite database, so a same-day restart
// does not refetch the month archives. This is the only persistent state
// in the system.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
	log *logger.Logger
}

// SQLiteOption configures a SQLite store.
type SQLiteOption func(*SQLite)

// WithSQLiteClock overrides the time source for tests.
func WithSQLiteClock(now func() time.Time) SQLiteOption {
	return func(s *SQLite) {
		s.now = now
	}
}

// OpenSQLite opens (and if needed initializes) a SQLite-backed cache at
// the given DSN.
func OpenSQLite(path string, opts ...SQLiteOption) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{
		db:  db,
		now: time.Now,
		log: logger.Default().WithPrefix("cache"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *SQLite) Get(url string) ([]byte, bool) {
	query, args, err := sqlBuilder.
		Select("body", "captured_at").
		From("responses").
		Where(squirrel.Eq{"url": url}).
		ToSql()
	if err != nil {
		s.log.Error("failed to build cache query: %v", err)
		return nil, false
	}

	var body []byte
	var capturedAt int64
	if err := s.db.QueryRow(query, args...).Scan(&body, &capturedAt); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Error("failed to read cache entry: %v", err)
		}
		return nil, false
	}

	if !sameCalendarDay(time.Unix(capturedAt, 0), s.now()) {
		return nil, false
	}
	return body, true
}

func (s *SQLite) Put(url string, body []byte) {
	query, args, err := sqlBuilder.
		Insert("responses").
		Columns("url", "body", "captured_at").
		Values(url, body, s.now().Unix()).
		Suffix("ON CONFLICT(url) DO UPDATE SET body = excluded.body, captured_at = excluded.captured_at").
		ToSql()
	if err != nil {
		s.log.Error("failed to build cache upsert: %v", err)
		return
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		s.log.Error("failed to write cache entry: %v", err)
	}
}

// Prune deletes entries not captured today. Stale rows are harmless but
// accumulate one month archive per player per day.
func (s *SQLite) Prune() error {
	start := time.Date(s.now().Year(), s.now().Month(), s.now().Day(), 0, 0, 0, 0, s.now().Location())
	query, args, err := sqlBuilder.
		Delete("responses").
		Where(squirrel.Lt{"captured_at": start.Unix()}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.Exec(query, args...)
	return err
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
