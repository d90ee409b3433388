package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/tursodatabase/go-libsql"
)

// Open connects to the document store through libSQL. dsn is either a local
// path (optionally prefixed with "file:") or a remote libsql:// / https://
// URL, in which case authToken is attached.
//
// Local databases are configured for concurrent use: WAL journal mode, 5 s
// busy timeout, foreign keys enabled.
func Open(ctx context.Context, dsn, authToken string) (*sql.DB, error) {
	remote := isRemote(dsn)
	if remote {
		if authToken != "" {
			u, err := url.Parse(dsn)
			if err != nil {
				return nil, fmt.Errorf("parsing document store url: %w", err)
			}
			q := u.Query()
			q.Set("authToken", authToken)
			u.RawQuery = q.Encode()
			dsn = u.String()
		}
	} else if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if strings.Contains(dsn, ":memory:") {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	if !remote {
		// libSQL rejects Exec for PRAGMAs that return rows, but some PRAGMAs
		// (like foreign_keys=ON) return nothing. Use QueryContext and drain rows
		// to handle both cases uniformly.
		pragmas := []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA busy_timeout=5000",
			"PRAGMA foreign_keys=ON",
		}
		for _, p := range pragmas {
			rows, err := db.QueryContext(ctx, p)
			if err != nil {
				db.Close()
				return nil, fmt.Errorf("executing %s: %w", p, err)
			}
			rows.Close()
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func isRemote(dsn string) bool {
	for _, scheme := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(dsn, scheme) {
			return true
		}
	}
	return false
}
