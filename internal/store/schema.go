package store

import "database/sql"

// schema defines the sqlite schema for the local save-slot registry: a
// catalogue of saved puzzles, not the word index itself.
const schema = `
CREATE TABLE IF NOT EXISTS puzzle_slots (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	path TEXT NOT NULL,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	dict_fingerprint TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_puzzle_slots_name ON puzzle_slots(name);
`

// initSchema creates the registry table if it does not already exist.
func initSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
