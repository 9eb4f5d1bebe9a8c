// Package seen gives read-only access to the scraper's SQLite de-duplication
// store. The scraper owns the schema and all writes; this side only inspects
// what has already been notified.
package seen

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Entry is one cached listing from the seen table.
type Entry struct {
	Link      string
	Title     string
	Site      string
	Price     string
	FirstSeen string
}

// Store is a read-only handle on the seen-links database.
type Store struct {
	db *sql.DB
}

// Open opens the database at path read-only.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open seen database %s: %w", path, err)
	}
	// SQLite prefers a small number of connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Count returns the total number of cached listings.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM seen`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count seen links: %w", err)
	}
	return n, nil
}

// Recent returns the most recently cached listings, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT link, title, site, price, first_seen
		 FROM seen ORDER BY first_seen DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query seen links: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var title, site, price, firstSeen sql.NullString
		if err := rows.Scan(&e.Link, &title, &site, &price, &firstSeen); err != nil {
			return nil, err
		}
		e.Title = title.String
		e.Site = site.String
		e.Price = price.String
		e.FirstSeen = firstSeen.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
