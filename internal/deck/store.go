// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/flashdeck/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "flashdeck.db"
)

// Store is the local deck library, a SQLite database under the library
// data directory.
type Store struct {
	db *sql.DB
}

// Info summarizes one stored deck for listings.
type Info struct {
	Name      string
	Subject   string
	Lesson    string
	CardCount int
	UpdatedAt time.Time
}

// NewStore opens or creates the library database at
// <data-dir>/index/flashdeck.db, creating the schema if needed.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS decks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			subject TEXT,
			lesson TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cards (
			deck_id INTEGER NOT NULL REFERENCES decks(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			front TEXT NOT NULL,
			back TEXT,
			PRIMARY KEY (deck_id, position)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveDeck inserts the deck or, when a deck of the same name exists,
// replaces its metadata and cards.
func (s *Store) SaveDeck(ctx context.Context, d types.Deck) error {
	if d.Name == "" {
		return fmt.Errorf("deck has no name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO decks (name, subject, lesson, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			subject = excluded.subject,
			lesson = excluded.lesson,
			updated_at = excluded.updated_at`,
		d.Name, d.Subject, d.Lesson, now, now); err != nil {
		return fmt.Errorf("saving deck %s: %w", d.Name, err)
	}

	// LastInsertId is meaningless after an upsert; look the row up.
	var deckID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM decks WHERE name = ?`, d.Name).Scan(&deckID); err != nil {
		return fmt.Errorf("resolving deck id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cards WHERE deck_id = ?`, deckID); err != nil {
		return fmt.Errorf("clearing cards: %w", err)
	}

	for i, c := range d.Cards {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cards (deck_id, position, front, back) VALUES (?, ?, ?, ?)`,
			deckID, i, c.Front, c.Back); err != nil {
			return fmt.Errorf("saving card %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// ListDecks returns all stored decks, most recently updated first.
func (s *Store) ListDecks(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.name, COALESCE(d.subject, ''), COALESCE(d.lesson, ''),
		       COUNT(c.deck_id), d.updated_at
		FROM decks d LEFT JOIN cards c ON c.deck_id = d.id
		GROUP BY d.id
		ORDER BY d.updated_at DESC, d.name`)
	if err != nil {
		return nil, fmt.Errorf("listing decks: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		var updated string
		if err := rows.Scan(&info.Name, &info.Subject, &info.Lesson, &info.CardCount, &updated); err != nil {
			return nil, fmt.Errorf("scanning deck row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, updated); err == nil {
			info.UpdatedAt = t
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// GetDeck loads a stored deck by name with its cards in order.
func (s *Store) GetDeck(ctx context.Context, name string) (types.Deck, error) {
	var d types.Deck
	var deckID int64
	var subject, lesson sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, subject, lesson FROM decks WHERE name = ?`, name).
		Scan(&deckID, &d.Name, &subject, &lesson)
	if err == sql.ErrNoRows {
		return types.Deck{}, fmt.Errorf("no deck named %q in the library", name)
	}
	if err != nil {
		return types.Deck{}, fmt.Errorf("loading deck %s: %w", name, err)
	}
	d.Subject = subject.String
	d.Lesson = lesson.String

	rows, err := s.db.QueryContext(ctx,
		`SELECT front, COALESCE(back, '') FROM cards WHERE deck_id = ? ORDER BY position`, deckID)
	if err != nil {
		return types.Deck{}, fmt.Errorf("loading cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c types.Card
		if err := rows.Scan(&c.Front, &c.Back); err != nil {
			return types.Deck{}, fmt.Errorf("scanning card row: %w", err)
		}
		d.Cards = append(d.Cards, c)
	}
	return d, rows.Err()
}

// DeleteDeck removes a deck and its cards.
func (s *Store) DeleteDeck(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM decks WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting deck %s: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no deck named %q in the library", name)
	}
	return nil
}
