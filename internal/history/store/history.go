// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     store
// Description: Persistent run history backed by SQLite
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded run
type Entry struct {
	ID         string    `json:"id" yaml:"id"`
	SourceName string    `json:"source_name" yaml:"source_name"`
	Input      string    `json:"input" yaml:"input"`
	Success    bool      `json:"success" yaml:"success"`
	Output     string    `json:"output" yaml:"output"`
	Category   string    `json:"category,omitempty" yaml:"category,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// HistoryStore defines the interface for run history persistence
type HistoryStore interface {
	// Record stores e, assigning an ID and timestamp when missing
	Record(ctx context.Context, e *Entry) error
	Get(ctx context.Context, id string) (*Entry, error)
	// List returns entries newest first
	List(ctx context.Context, limit, offset int) ([]*Entry, error)
	// Inputs returns the last limit inputs oldest first
	Inputs(ctx context.Context, limit int) ([]string, error)
	Clear(ctx context.Context) (int64, error)
	// Prune removes entries created before cutoff
	Prune(ctx context.Context, cutoff time.Time) (int64, error)

	Close() error
	Statistics(ctx context.Context) (map[string]interface{}, error)
}

// SQLiteHistoryStore implements HistoryStore using SQLite
type SQLiteHistoryStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteHistoryConfig holds configuration for the SQLite store
type SQLiteHistoryConfig struct {
	Path string
}

// DefaultHistoryConfig returns default configuration
func DefaultHistoryConfig() SQLiteHistoryConfig {
	return SQLiteHistoryConfig{
		Path: "./data/history.db",
	}
}

// NewSQLiteHistoryStore creates a new SQLite-based history store
func NewSQLiteHistoryStore(cfg SQLiteHistoryConfig) (*SQLiteHistoryStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteHistoryStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteHistoryStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		source_name TEXT NOT NULL DEFAULT '',
		input TEXT NOT NULL,
		success INTEGER NOT NULL DEFAULT 0,
		output TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run
func (s *SQLiteHistoryStore) Record(ctx context.Context, e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(e)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_name, input, success, output, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.SourceName, e.Input, e.Success, e.Output, e.Category, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	return nil
}

// Get retrieves a run by ID; nil when it does not exist
func (s *SQLiteHistoryStore) Get(ctx context.Context, id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_name, input, success, output, category, created_at
		FROM runs WHERE id = ?
	`, id)

	var e Entry
	err := row.Scan(&e.ID, &e.SourceName, &e.Input, &e.Success, &e.Output, &e.Category, &e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return &e, nil
}

// List returns runs newest first
func (s *SQLiteHistoryStore) List(ctx context.Context, limit, offset int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_name, input, success, output, category, created_at
		FROM runs
		ORDER BY seq DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SourceName, &e.Input, &e.Success, &e.Output, &e.Category, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// Inputs returns the last limit inputs, oldest first
func (s *SQLiteHistoryStore) Inputs(ctx context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT input FROM runs ORDER BY seq DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get inputs: %w", err)
	}
	defer rows.Close()

	var inputs []string
	for rows.Next() {
		var in string
		if err := rows.Scan(&in); err != nil {
			return nil, fmt.Errorf("failed to scan input: %w", err)
		}
		inputs = append(inputs, in)
	}

	reverse(inputs)
	return inputs, rows.Err()
}

// Clear deletes all runs
func (s *SQLiteHistoryStore) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	n, _ := result.RowsAffected()
	return n, nil
}

// Prune deletes runs created before cutoff
func (s *SQLiteHistoryStore) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}

	n, _ := result.RowsAffected()
	return n, nil
}

// Close closes the database connection
func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}

// Statistics returns store statistics
func (s *SQLiteHistoryStore) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})

	var total, failed int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE success = 0`).Scan(&failed); err != nil {
		return nil, fmt.Errorf("failed to count failed runs: %w", err)
	}

	stats["total_runs"] = total
	stats["failed_runs"] = failed
	if total > 0 {
		stats["success_rate"] = float64(total-failed) / float64(total)
	}

	return stats, nil
}

// MemoryHistoryStore is an in-memory implementation, used when the SQLite
// history cannot be opened
type MemoryHistoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewMemoryHistoryStore creates a new in-memory history store
func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{}
}

// Record stores a run
func (s *MemoryHistoryStore) Record(ctx context.Context, e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(e)
	stored := *e
	s.entries = append(s.entries, &stored)
	return nil
}

// Get retrieves a run by ID
func (s *MemoryHistoryStore) Get(ctx context.Context, id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			found := *e
			return &found, nil
		}
	}
	return nil, nil
}

// List returns runs newest first
func (s *MemoryHistoryStore) List(ctx context.Context, limit, offset int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var out []*Entry
	for i := len(s.entries) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		e := *s.entries[i]
		out = append(out, &e)
	}
	return out, nil
}

// Inputs returns the last limit inputs, oldest first
func (s *MemoryHistoryStore) Inputs(ctx context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.entries) - limit
	if start < 0 {
		start = 0
	}

	var inputs []string
	for _, e := range s.entries[start:] {
		inputs = append(inputs, e.Input)
	}
	return inputs, nil
}

// Clear deletes all runs
func (s *MemoryHistoryStore) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.entries))
	s.entries = nil
	return n, nil
}

// Prune deletes runs created before cutoff
func (s *MemoryHistoryStore) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	var removed int64
	for _, e := range s.entries {
		if e.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed, nil
}

// Close is a no-op
func (s *MemoryHistoryStore) Close() error {
	return nil
}

// Statistics returns store statistics
func (s *MemoryHistoryStore) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var failed int64
	for _, e := range s.entries {
		if !e.Success {
			failed++
		}
	}

	total := int64(len(s.entries))
	stats := map[string]interface{}{
		"total_runs":  total,
		"failed_runs": failed,
	}
	if total > 0 {
		stats["success_rate"] = float64(total-failed) / float64(total)
	}
	return stats, nil
}

func prepare(e *Entry) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
