package repository

import (
	"context"
	"database/sql"
	"embed"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"

	"github.com/notify-lab/herald/pkg/domain/interfaces"
	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
)

//go:embed migrations.sql
var migrationsFS embed.FS

// SQLite implements Repository interface with a local SQLite database
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and applies migrations
func NewSQLite(ctx context.Context, path string) (interfaces.Repository, error) {
	if path == "" {
		return nil, goerr.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create sqlite directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database")
	}
	// SQLite prefers a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")
	_, _ = db.Exec("PRAGMA busy_timeout = 5000")

	s := &SQLite{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) migrate(ctx context.Context) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return goerr.Wrap(err, "failed to read migrations")
	}
	if _, err := s.db.ExecContext(ctx, string(b)); err != nil {
		return goerr.Wrap(err, "failed to apply migrations")
	}
	return nil
}

// PutAttempt appends a delivery attempt row
func (s *SQLite) PutAttempt(ctx context.Context, attempt *model.DeliveryAttempt) error {
	if attempt == nil {
		return goerr.New("attempt is nil")
	}
	if attempt.ID == "" {
		return goerr.New("attempt ID is empty")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts(id, recipient_id, username, message, success, error, at)
		 VALUES(?,?,?,?,?,?,?)`,
		attempt.ID.String(), attempt.RecipientID.String(), attempt.Username,
		attempt.Message, attempt.Success, nullStr(attempt.Error),
		attempt.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to insert attempt")
	}
	return nil
}

// ListAttempts lists attempts for a recipient, newest first
func (s *SQLite) ListAttempts(ctx context.Context, recipientID types.Snowflake, limit int) ([]*model.DeliveryAttempt, error) {
	if recipientID == "" {
		return nil, goerr.New("recipient ID is empty")
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, recipient_id, username, message, success, error, at
		 FROM attempts WHERE recipient_id = ? ORDER BY at DESC LIMIT ?`,
		recipientID.String(), limit,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query attempts")
	}
	defer rows.Close()

	var attempts []*model.DeliveryAttempt
	for rows.Next() {
		var (
			attempt  model.DeliveryAttempt
			username sql.NullString
			errText  sql.NullString
			at       string
		)
		if err := rows.Scan(&attempt.ID, &attempt.RecipientID, &username,
			&attempt.Message, &attempt.Success, &errText, &at); err != nil {
			return nil, goerr.Wrap(err, "failed to scan attempt")
		}
		if username.Valid {
			attempt.Username = &username.String
		}
		if errText.Valid {
			attempt.Error = errText.String
		}
		ts, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse attempt timestamp")
		}
		attempt.Timestamp = ts
		attempts = append(attempts, &attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate attempts")
	}

	return attempts, nil
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
