// Package store implements the local save-slot registry (ambient): a
// sqlite catalogue of named, saved puzzles. It never stores the word
// index or grid contents itself - those live as files on disk at the
// path each slot records; the registry is metadata only.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/crossplay/xword/pkg/grid"
)

// Slot is one catalogued save: a name, the file it was written to, and
// enough puzzle metadata to list it without reopening the file.
type Slot struct {
	ID              string
	Name            string
	Path            string
	Title           string
	Author          string
	Difficulty      grid.Difficulty
	DictFingerprint string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Registry is a handle on the save-slot database.
type Registry struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Registry, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: initializing schema: %w", err)
	}
	return &Registry{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Save inserts a new catalogue entry for one puzzle slot under a freshly
// stamped ID; an existing entry with the same Name is not replaced. The
// ID is returned so callers can address this entry later even if Name
// is reused.
func (r *Registry) Save(name, path, title, author string, difficulty grid.Difficulty, dictFingerprint string) (string, error) {
	id := uuid.New().String()
	now := time.Now()

	_, err := r.db.Exec(`
		INSERT INTO puzzle_slots (id, name, path, title, author, difficulty, dict_fingerprint, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, name, path, title, author, string(difficulty), dictFingerprint, now, now)
	if err != nil {
		return "", fmt.Errorf("store: saving slot %q: %w", name, err)
	}
	return id, nil
}

// Touch updates a slot's updated_at timestamp, for example after
// overwriting its file in place.
func (r *Registry) Touch(id string) error {
	res, err := r.db.Exec(`UPDATE puzzle_slots SET updated_at = ? WHERE id = ?`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("store: touching slot %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: touching slot %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("store: no slot with id %s", id)
	}
	return nil
}

// FindByName returns the most recently updated slot with the given
// name, or (Slot{}, false) if none exists.
func (r *Registry) FindByName(name string) (Slot, bool, error) {
	row := r.db.QueryRow(`
		SELECT id, name, path, title, author, difficulty, dict_fingerprint, created_at, updated_at
		FROM puzzle_slots WHERE name = ? ORDER BY updated_at DESC LIMIT 1
	`, name)
	s, err := scanSlot(row)
	if err == sql.ErrNoRows {
		return Slot{}, false, nil
	}
	if err != nil {
		return Slot{}, false, fmt.Errorf("store: finding slot %q: %w", name, err)
	}
	return s, true, nil
}

// List returns every catalogued slot, most recently updated first.
func (r *Registry) List() ([]Slot, error) {
	rows, err := r.db.Query(`
		SELECT id, name, path, title, author, difficulty, dict_fingerprint, created_at, updated_at
		FROM puzzle_slots ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("store: listing slots: %w", err)
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scanning slot row: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: listing slots: %w", err)
	}
	return slots, nil
}

// Delete removes a catalogued slot by ID. It does not touch the
// underlying file.
func (r *Registry) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM puzzle_slots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: deleting slot %s: %w", id, err)
	}
	return nil
}

// rowScanner abstracts over *sql.Row and *sql.Rows, both of which
// expose Scan with the same signature.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (Slot, error) {
	var s Slot
	var difficulty string
	if err := row.Scan(&s.ID, &s.Name, &s.Path, &s.Title, &s.Author, &difficulty, &s.DictFingerprint, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return Slot{}, err
	}
	s.Difficulty = grid.Difficulty(difficulty)
	return s, nil
}
