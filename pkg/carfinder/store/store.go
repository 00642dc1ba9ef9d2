// Package store persists saved searches in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/pipeline"
)

var ErrNotFound = errors.New("saved search not found")

const schema = `
CREATE TABLE IF NOT EXISTS saved_searches(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  market TEXT NOT NULL,
  criteria_json TEXT NOT NULL,
  sort TEXT NOT NULL DEFAULT 'relevance',
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_saved_searches_created ON saved_searches(created_at);
`

// SavedSearch is a named listing search a user can rerun later
type SavedSearch struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Market    dal.Market       `json:"market"`
	Criteria  dal.Criteria     `json:"criteria"`
	Sort      pipeline.SortKey `json:"sort"`
	CreatedAt time.Time        `json:"createdAt"`
}

type row struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Market       string `db:"market"`
	CriteriaJSON string `db:"criteria_json"`
	Sort         string `db:"sort"`
	CreatedAt    string `db:"created_at"`
}

func (r row) savedSearch() (SavedSearch, error) {
	var c dal.Criteria
	if err := json.Unmarshal([]byte(r.CriteriaJSON), &c); err != nil {
		return SavedSearch{}, fmt.Errorf("decode criteria of %s: %w", r.ID, err)
	}
	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return SavedSearch{}, fmt.Errorf("decode created_at of %s: %w", r.ID, err)
	}
	return SavedSearch{
		ID:        r.ID,
		Name:      r.Name,
		Market:    dal.Market(r.Market),
		Criteria:  c,
		Sort:      pipeline.SortKey(r.Sort),
		CreatedAt: created,
	}, nil
}

// Store is a saved search repository
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open opens the SQLite database at dsn and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// SQLite serializes writers; one connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dsn, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create stores a new saved search and returns it with its ID and creation
// time filled in.
func (s *Store) Create(ss SavedSearch) (SavedSearch, error) {
	criteria, err := json.Marshal(ss.Criteria)
	if err != nil {
		return SavedSearch{}, fmt.Errorf("encode criteria: %w", err)
	}
	ss.ID = uuid.NewString()
	ss.CreatedAt = s.now().UTC()
	if ss.Sort == "" {
		ss.Sort = pipeline.SortRelevance
	}

	_, err = s.db.Exec(`INSERT INTO saved_searches(id,name,market,criteria_json,sort,created_at) VALUES(?,?,?,?,?,?)`,
		ss.ID, ss.Name, string(ss.Market), string(criteria), string(ss.Sort), ss.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return SavedSearch{}, fmt.Errorf("insert saved search: %w", err)
	}
	return ss, nil
}

// Get returns the saved search with the given id.
func (s *Store) Get(id string) (SavedSearch, error) {
	var r row
	err := s.db.Get(&r, `SELECT id, name, market, criteria_json, sort, created_at FROM saved_searches WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedSearch{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return SavedSearch{}, fmt.Errorf("select saved search %s: %w", id, err)
	}
	return r.savedSearch()
}

// List returns all saved searches, newest first.
func (s *Store) List() ([]SavedSearch, error) {
	var rows []row
	err := s.db.Select(&rows, `SELECT id, name, market, criteria_json, sort, created_at FROM saved_searches ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("select saved searches: %w", err)
	}
	out := make([]SavedSearch, 0, len(rows))
	for _, r := range rows {
		ss, err := r.savedSearch()
		if err != nil {
			return nil, err
		}
		out = append(out, ss)
	}
	return out, nil
}

// Delete removes the saved search with the given id.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM saved_searches WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete saved search %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete saved search %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
