// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlitetest provides an in-memory, pre-seeded SQLite database for tests.
//
// # Fixture
//
//	vocabulary tags:        1 carrots, 2 hares, 17 bunny-wabbit, 42 meaning
//	vocabulary categories: 20 news, 21 carrots (slug shared with term 1)
//
//	node 1 article "Carrot season"     terms 1, 17  published  createdat 1000
//	node 2 article "Hare today"        terms 2, 17  published  createdat 2000
//	node 3 page    "About carrots"     terms 1      published  createdat 3000
//	node 4 article "Draft on bunnies"  terms 17     draft      createdat 4000
//	node 5 article "Daily news"        terms 20, 42 published  createdat 5000
package sqlitetest

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tagfilter/internal/platform/sqlite"
)

const fixture = `
INSERT INTO taxonomy_vocabulary (id, name, description, weight) VALUES
    ('tags', 'Tags', 'Free tagging', 0),
    ('categories', 'Categories', NULL, 1);

INSERT INTO taxonomy_term (id, vocabularyid, name, slug, description, weight) VALUES
    (1, 'tags', 'Carrots', 'carrots', NULL, 0),
    (2, 'tags', 'Hares', 'hares', NULL, 0),
    (17, 'tags', 'Bunny Wabbit', 'bunny-wabbit', 'Wascally', 0),
    (42, 'tags', 'Meaning', 'meaning', NULL, 5),
    (20, 'categories', 'News', 'news', NULL, 0),
    (21, 'categories', 'Carrots', 'carrots', NULL, 1);

INSERT INTO content_node (id, type, title, slug, summary, published, createdat) VALUES
    (1, 'article', 'Carrot season', 'carrot-season', 'Orange', 1, 1000),
    (2, 'article', 'Hare today', 'hare-today', NULL, 1, 2000),
    (3, 'page', 'About carrots', 'about-carrots', NULL, 1, 3000),
    (4, 'article', 'Draft on bunnies', 'draft-on-bunnies', NULL, 0, 4000),
    (5, 'article', 'Daily news', 'daily-news', NULL, 1, 5000);

INSERT INTO content_nodeterm (nodeid, termid) VALUES
    (1, 1), (1, 17),
    (2, 2), (2, 17),
    (3, 1),
    (4, 17),
    (5, 20), (5, 42);
`

// NewDB opens an in-memory database with the schema applied and the fixture loaded.
// The database is closed when the test ends.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, fixture)
	require.NoError(t, err)

	return db
}

// NewFile writes the seeded database to a file under t.TempDir and returns its path.
func NewFile(t testing.TB) string {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tagfilter.db")

	db, err := sqlite.Open(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, fixture)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	return path
}
