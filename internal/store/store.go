package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

// ErrNotFound is returned when no prompt exists for the requested id.
var ErrNotFound = errors.New("prompt not found")

// currentSchemaVersion is the latest schema version. Bump when adding
// migrations.
const currentSchemaVersion = 1

// Store persists prompts in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the prompt database at path.
// ":memory:" is supported for tests.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS prompts (
		  id          INTEGER PRIMARY KEY AUTOINCREMENT,
		  name        TEXT NOT NULL,
		  description TEXT NOT NULL DEFAULT '',
		  content     TEXT NOT NULL,
		  created_at  INTEGER NOT NULL,
		  updated_at  INTEGER NOT NULL
		);`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}
	}

	if version != currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}
	return nil
}

// List returns all prompts, newest first.
func (s *Store) List(ctx context.Context) ([]models.Prompt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, content, created_at, updated_at
		 FROM prompts ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []models.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}

// Get returns a single prompt by id.
func (s *Store) Get(ctx context.Context, id int64) (*models.Prompt, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, content, created_at, updated_at
		 FROM prompts WHERE id = ?`, id)
	p, err := scanPrompt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new prompt and returns it with its assigned id.
func (s *Store) Create(ctx context.Context, draft models.Draft) (*models.Prompt, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO prompts (name, description, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		draft.Name, draft.Description, draft.Content, now.Unix(), now.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return &models.Prompt{
		ID:          id,
		Name:        draft.Name,
		Description: draft.Description,
		Content:     draft.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update replaces the editable fields of the prompt with the given id.
func (s *Store) Update(ctx context.Context, id int64, draft models.Draft) (*models.Prompt, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE prompts SET name = ?, description = ?, content = ?, updated_at = ?
		 WHERE id = ?`,
		draft.Name, draft.Description, draft.Content, now.Unix(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update prompt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes the prompt with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM prompts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPrompt(row scanner) (models.Prompt, error) {
	var p models.Prompt
	var created, updated int64
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Content, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, sql.ErrNoRows
		}
		return p, fmt.Errorf("failed to scan prompt: %w", err)
	}
	p.CreatedAt = time.Unix(created, 0).UTC()
	p.UpdatedAt = time.Unix(updated, 0).UTC()
	return p, nil
}
