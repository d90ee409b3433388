// Package docstore keeps JSON documents grouped by collection path in a
// libSQL table, in the shape of a hosted document database:
// count, list, get, add, delete.
package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store holds every collection in one documents table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(ctx context.Context, db *sql.DB) (*Store, error) {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id         TEXT PRIMARY KEY,
			collection TEXT NOT NULL,
			created_at TEXT NOT NULL,
			data       JSONB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS documents_collection_created
			ON documents (collection, created_at)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}
	return &Store{db: db, now: time.Now}, nil
}

// Check pings the underlying database.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Collection returns a handle on the documents stored under path.
func (s *Store) Collection(path string) *Collection {
	return &Collection{s: s, path: path}
}

// Collection is one document collection, e.g.
// artifacts/{appId}/public/data/registrations.
type Collection struct {
	s    *Store
	path string
}

func (c *Collection) Path() string { return c.path }

func (c *Collection) Count(ctx context.Context) (int, error) {
	var n int
	err := c.s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = ?`, c.path,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", c.path, err)
	}
	return n, nil
}

// Add stores doc under a fresh ID and returns that ID.
func (c *Collection) Add(ctx context.Context, doc any) (string, error) {
	return c.insert(ctx, c.s.now().UTC(), doc)
}

func (c *Collection) insert(ctx context.Context, at time.Time, doc any) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = c.s.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, created_at, data) VALUES (?, ?, ?, jsonb(?))`,
		id, c.path, at.Format(timeLayout), string(data),
	)
	if err != nil {
		return "", fmt.Errorf("adding to %s: %w", c.path, err)
	}
	return id, nil
}

func (c *Collection) Get(ctx context.Context, id string, dest any) error {
	var data string
	err := c.s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM documents WHERE collection = ? AND id = ?`, c.path, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (c *Collection) Delete(ctx context.Context, id string) error {
	result, err := c.s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, c.path, id,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// RawDoc is a stored document before decoding.
type RawDoc struct {
	ID        string
	CreatedAt time.Time
	Data      []byte
}

// List loads every document of the collection into memory, newest first.
func (c *Collection) List(ctx context.Context) ([]RawDoc, error) {
	rows, err := c.s.db.QueryContext(ctx,
		`SELECT id, created_at, json(data) FROM documents
		 WHERE collection = ?
		 ORDER BY created_at DESC, rowid DESC`, c.path,
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.path, err)
	}
	defer rows.Close()

	var docs []RawDoc
	for rows.Next() {
		var (
			d       RawDoc
			created string
			data    string
		)
		if err := rows.Scan(&d.ID, &created, &data); err != nil {
			return nil, err
		}
		d.CreatedAt, _ = time.Parse(timeLayout, created)
		d.Data = []byte(data)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
