package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/entity"
	"github.com/yourusername/bearing-assistant-bot/internal/domain/repository"
)

type sqliteQueryLogRepository struct {
	db *sql.DB
}

// NewSQLiteQueryLogRepository SQLite asosidagi so'rovlar audit log
func NewSQLiteQueryLogRepository(dbPath string) (repository.QueryLogRepository, error) {
	if dbPath == "" {
		return nil, errors.New("db path bo'sh bo'lmasligi kerak")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("db papkasini yaratib bo'lmadi: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite ochilmadi: %w", err)
	}

	if err := createQueryLogSchema(db); err != nil {
		return nil, err
	}

	return &sqliteQueryLogRepository{db: db}, nil
}

func createQueryLogSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS query_log (
	id TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	query TEXT NOT NULL,
	answer TEXT,
	result_type TEXT NOT NULL,
	ts TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_query_log_ts ON query_log (ts);
`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("schema yaratib bo'lmadi: %w", err)
	}
	return nil
}

// Append yangi audit yozuvini qo'shish
func (s *sqliteQueryLogRepository) Append(ctx context.Context, entry entity.QueryLogEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO query_log (id, conversation_id, query, answer, result_type, ts) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.ConversationID, entry.Query, entry.Answer, string(entry.ResultType), entry.Timestamp)
	if err != nil {
		return fmt.Errorf("audit yozuvini saqlab bo'lmadi: %w", err)
	}
	return nil
}

// Recent oxirgi yozuvlarni olish (yangisi birinchi)
func (s *sqliteQueryLogRepository) Recent(ctx context.Context, limit int) ([]entity.QueryLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversation_id, query, answer, result_type, ts FROM query_log ORDER BY ts DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("audit yozuvlarini o'qib bo'lmadi: %w", err)
	}
	defer rows.Close()

	var entries []entity.QueryLogEntry
	for rows.Next() {
		var entry entity.QueryLogEntry
		var resultType string
		if err := rows.Scan(&entry.ID, &entry.ConversationID, &entry.Query, &entry.Answer, &resultType, &entry.Timestamp); err != nil {
			return nil, err
		}
		entry.ResultType = entity.ResultType(resultType)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close db ni yopish
func (s *sqliteQueryLogRepository) Close() error {
	return s.db.Close()
}
