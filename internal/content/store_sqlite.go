// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/tagfilter/internal/platform/database/schema"
	"github.com/taibuivan/tagfilter/internal/platform/dberr"
)

// SQLiteRepository implements [Repository] on database/sql with the modernc driver.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository constructs a SQLite backed content store.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var (
	liteNode  = schema.ContentNode.Flat()
	liteIndex = schema.ContentNodeTerm.Flat()
)

// List mirrors [PostgresRepository.List]. Array binds become IN lists and
// createdat is stored as unix seconds.
func (repository *SQLiteRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Node, int, error) {
	where, args := sqliteWhere(filter)

	query := fmt.Sprintf(`
		SELECT n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s,
			COUNT(*) OVER() AS total_count
		FROM %s n
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?`,
		liteNode.ID, liteNode.Type, liteNode.Title, liteNode.Slug, liteNode.Summary, liteNode.Published, liteNode.CreatedAt,
		liteNode.Table, where,
		orderBy(filter.Sort, "n."+liteNode.ID, "n."+liteNode.Title, "n."+liteNode.CreatedAt))

	rows, err := repository.db.QueryContext(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_nodes")
	}
	defer rows.Close()

	var total int
	nodes := make([]*Node, 0, limit)
	for rows.Next() {
		n := &Node{}
		var createdAt int64
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Slug, &n.Summary, &n.Published, &createdAt, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_node")
		}
		n.CreatedAt = time.Unix(createdAt, 0).UTC()
		nodes = append(nodes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_nodes")
	}

	if len(nodes) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s n WHERE %s`, liteNode.Table, where)
		if err := repository.db.QueryRowContext(context, countQuery, args...).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, "count_nodes")
		}
	}
	return nodes, total, nil
}

func sqliteWhere(filter Filter) (string, []any) {
	var whereBuilder strings.Builder
	var args []any

	whereBuilder.WriteString("1 = 1")

	if filter.PublishedOnly {
		whereBuilder.WriteString(fmt.Sprintf(" AND n.%s = 1", liteNode.Published))
	}

	if len(filter.Types) > 0 {
		whereBuilder.WriteString(fmt.Sprintf(" AND n.%s IN (%s)", liteNode.Type, placeholders(len(filter.Types))))
		for _, t := range filter.Types {
			args = append(args, t)
		}
	}

	for _, terms := range filter.TermSets {
		if terms == nil {
			continue
		}
		if len(terms) == 0 {
			whereBuilder.WriteString(" AND 1 = 0")
			continue
		}
		whereBuilder.WriteString(fmt.Sprintf(` AND EXISTS (SELECT 1 FROM %s ni WHERE ni.%s = n.%s AND ni.%s IN (%s))`,
			liteIndex.Table, liteIndex.NodeID, liteNode.ID, liteIndex.TermID, placeholders(len(terms))))
		for _, id := range terms {
			args = append(args, id)
		}
	}

	return whereBuilder.String(), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
