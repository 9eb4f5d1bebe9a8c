package seen

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createScraperDB builds a database shaped like the one the Python scraper
// writes: seen(link PRIMARY KEY, title, site, price, first_seen).
func createScraperDB(t *testing.T, rows [][5]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seen_links.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE seen (
		link TEXT PRIMARY KEY,
		title TEXT,
		site TEXT,
		price TEXT,
		first_seen TIMESTAMP
	)`)
	require.NoError(t, err)

	for _, r := range rows {
		_, err = db.Exec(
			`INSERT INTO seen (link, title, site, price, first_seen) VALUES (?, ?, ?, ?, ?)`,
			r[0], r[1], r[2], r[3], r[4])
		require.NoError(t, err)
	}

	return path
}

func TestCountAndRecent(t *testing.T) {
	path := createScraperDB(t, [][5]string{
		{"https://mobile.de/a", "BMW 320d", "mobile.de", "12.500 €", "2026-08-20T10:00:00+00:00"},
		{"https://autoscout24.com/b", "Audi A4", "autoscout24", "9.900 €", "2026-08-22T08:30:00+00:00"},
		{"https://willhaben.at/c", "VW Passat", "willhaben", "", "2026-08-21T19:15:00+00:00"},
	})

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	total, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "https://autoscout24.com/b", entries[0].Link)
	assert.Equal(t, "https://willhaben.at/c", entries[1].Link)
	assert.Equal(t, "autoscout24", entries[0].Site)
}

func TestRecentEmptyStore(t *testing.T) {
	path := createScraperDB(t, nil)

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	total, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentToleratesNullColumns(t *testing.T) {
	path := createScraperDB(t, nil)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO seen (link) VALUES ('https://finn.no/x')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://finn.no/x", entries[0].Link)
	assert.Empty(t, entries[0].Title)
}
