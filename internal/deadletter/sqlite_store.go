package deadletter

import (
	"context"
	"database/sql"
	"time"

	"github.com/petrijr/streammux/pkg/api"
)

// SQLiteStore is a Store backed by SQLite.
//
// It expects an *sql.DB that uses a SQLite driver (for example,
// "modernc.org/sqlite"). The caller is responsible for importing the driver,
// e.g.:
//
//	import _ "modernc.org/sqlite"
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore initializes the required schema in the given database and
// returns a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS dead_letters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tag TEXT NOT NULL,
			payload BLOB,
			failed_at INTEGER NOT NULL
		);`,
	)
	return err
}

func (s *SQLiteStore) Append(ctx context.Context, rec Record) error {
	payload, err := encodePayload(rec.Payload)
	if err != nil {
		return err
	}

	failedAt := rec.FailedAt
	if failedAt.IsZero() {
		failedAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO dead_letters (tag, payload, failed_at)
		VALUES (?, ?, ?)`,
		string(rec.Tag),
		payload,
		failedAt.UnixNano(),
	)
	return err
}

func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, tag, payload, failed_at
		FROM dead_letters
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var (
			rec      Record
			tag      string
			payload  []byte
			failedAt int64
		)
		if err := rows.Scan(&rec.ID, &tag, &payload, &failedAt); err != nil {
			return nil, err
		}

		rec.Tag = api.Tag(tag)
		rec.FailedAt = time.Unix(0, failedAt)
		rec.Payload, err = decodePayload(payload)
		if err != nil {
			return nil, err
		}

		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *SQLiteStore) Purge(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM dead_letters`)
	return err
}

func (s *SQLiteStore) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dead_letters`).Scan(&n)
	return n, err
}
