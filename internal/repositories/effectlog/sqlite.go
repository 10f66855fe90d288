package effectlog

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/chronicler/internal/effects"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS effect_log (
    world_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    entry_id TEXT NOT NULL,
    effect_type TEXT NOT NULL,
    payload BLOB NOT NULL,
    recorded_at INTEGER NOT NULL,
    PRIMARY KEY (world_id, seq)
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_effect_log_entry ON effect_log (entry_id);
`

// SQLiteLog is a durable journal in a single SQLite file
type SQLiteLog struct {
	sqlDB *sql.DB
	cfg   Config
}

// OpenSQLite opens (creating if needed) the journal at path
func OpenSQLite(path string, cfg *Config) (*SQLiteLog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.MissingParam("sqlite path")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open sqlite db").WithMeta("path", path)
	}
	// One writer keeps seq allocation inside a single connection
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.Wrap(err, "failed to ping sqlite db").WithMeta("path", path)
	}
	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.Wrap(err, "failed to create effect_log schema").WithMeta("path", path)
	}

	return &SQLiteLog{sqlDB: sqlDB, cfg: cfg.withDefaults()}, nil
}

// Close is nil-safe so callers can defer it unconditionally
func (l *SQLiteLog) Close() error {
	if l == nil || l.sqlDB == nil {
		return nil
	}
	return l.sqlDB.Close()
}

func (l *SQLiteLog) Append(ctx context.Context, worldID string, list []effects.Effect) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateAppend(worldID, list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return []Entry{}, nil
	}

	entries := l.cfg.newEntries(worldID, list)

	tx, err := l.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to begin append for world %s", worldID)
	}
	defer tx.Rollback()

	var last int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM effect_log WHERE world_id = ?`, worldID,
	).Scan(&last); err != nil {
		return nil, apperrors.Wrapf(err, "failed to read last seq for world %s", worldID)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO effect_log (world_id, seq, entry_id, effect_type, payload, recorded_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to prepare append")
	}
	defer stmt.Close()

	for i := range entries {
		entries[i].Seq = last + int64(i) + 1
		payload, err := encodeEntry(entries[i])
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx,
			worldID,
			entries[i].Seq,
			entries[i].ID,
			string(entries[i].Effect.Kind()),
			payload,
			toMillis(entries[i].RecordedAt),
		); err != nil {
			if isConstraintError(err) {
				return nil, apperrors.AlreadyExistsf("effect %d already logged for world %s", entries[i].Seq, worldID).
					WithMeta("world_id", worldID)
			}
			return nil, apperrors.Wrapf(err, "failed to append effect %d for world %s", entries[i].Seq, worldID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.Wrapf(err, "failed to commit effects for world %s", worldID)
	}
	return entries, nil
}

func (l *SQLiteLog) List(ctx context.Context, worldID string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if worldID == "" {
		return nil, apperrors.MissingParam("world ID")
	}

	rows, err := l.sqlDB.QueryContext(ctx,
		`SELECT seq, payload FROM effect_log WHERE world_id = ? ORDER BY seq`, worldID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to read effects for world %s", worldID)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var seq int64
		var payload []byte
		if err := rows.Scan(&seq, &payload); err != nil {
			return nil, apperrors.Wrapf(err, "failed to scan effect for world %s", worldID)
		}
		entry, err := decodeEntry(payload, seq)
		if err != nil {
			return nil, apperrors.Wrapf(err, "world %s", worldID)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrapf(err, "failed to read effects for world %s", worldID)
	}
	return entries, nil
}

func (l *SQLiteLog) Delete(ctx context.Context, worldID string) error {
	if worldID == "" {
		return apperrors.MissingParam("world ID")
	}
	if _, err := l.sqlDB.ExecContext(ctx, `DELETE FROM effect_log WHERE world_id = ?`, worldID); err != nil {
		return apperrors.Wrapf(err, "failed to delete effects for world %s", worldID)
	}
	return nil
}

func isConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
