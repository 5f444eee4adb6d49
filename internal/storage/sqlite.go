// Package storage persists issued handoff packages and per-turn funnel
// analytics in SQLite. Live prospect state never lands here; it stays in the
// in-memory session registry.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/service"
)

// SQLiteArchive implements service.Archive using SQLite.
type SQLiteArchive struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteArchive opens (or creates) the archive database at dbPath.
func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteArchive{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteArchive) Close() error {
	return s.db.Close()
}

// SaveHandoff stores an issued package. The full package is stored as JSON
// next to the queryable columns; packages are immutable so inserts never
// update.
func (s *SQLiteArchive) SaveHandoff(ctx context.Context, pkg *model.HandoffPackage) error {
	payload, err := json.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("failed to marshal handoff package: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO handoff_packages
			(id, session_id, generated_at, priority, urgency, validation_score, budget, project_type, summary, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pkg.ID,
		pkg.SessionID,
		pkg.GeneratedAt,
		string(pkg.Priority),
		string(pkg.Urgency),
		pkg.Validation.Overall,
		string(pkg.Commercial.Budget),
		pkg.Project.Type,
		pkg.Summary,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save handoff package: %w", err)
	}
	return nil
}

// LogTurn appends one analytics row for a processed turn.
func (s *SQLiteArchive) LogTurn(ctx context.Context, entry service.TurnLogEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO turn_log (session_id, stage, lead_score, message_count, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		entry.SessionID,
		string(entry.Stage),
		entry.LeadScore,
		entry.MessageCount,
		entry.At,
	)
	if err != nil {
		return fmt.Errorf("failed to log turn: %w", err)
	}
	return nil
}

// GetHandoff loads an archived package by id, for operator tooling.
func (s *SQLiteArchive) GetHandoff(ctx context.Context, id string) (*model.HandoffPackage, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM handoff_packages WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("failed to load handoff package: %w", err)
	}

	var pkg model.HandoffPackage
	if err := json.Unmarshal([]byte(payload), &pkg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal handoff package: %w", err)
	}
	return &pkg, nil
}

// CountTurns returns the number of logged turns for a session.
func (s *SQLiteArchive) CountTurns(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM turn_log WHERE session_id = ?`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count turns: %w", err)
	}
	return count, nil
}
