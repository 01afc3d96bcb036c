// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/tagfilter/internal/platform/database/schema"
	"github.com/taibuivan/tagfilter/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed content store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
List returns a filtered, paginated slice of nodes and the total count.

Description: One query per page.
  - Window Function: COUNT(*) OVER() returns the total without a second query.
  - Term sets: one EXISTS per set against the taxonomy index, matching ANY($n).
  - A page past the end carries no window count, so the total is counted separately.

Parameters:
  - context: context.Context
  - filter: Filter (term sets, types, published flag, sort)
  - limit: int
  - offset: int

Returns:
  - []*Node: Page of nodes
  - int: Total count matching filter
  - error: Database execution errors
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Node, int, error) {
	node := schema.ContentNode

	where, args := postgresWhere(filter)
	argID := len(args) + 1

	query := fmt.Sprintf(`
		SELECT n.%s, n.%s, n.%s, n.%s, n.%s, n.%s, n.%s,
			COUNT(*) OVER() AS total_count
		FROM %s n
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		node.ID, node.Type, node.Title, node.Slug, node.Summary, node.Published, node.CreatedAt,
		node.Table, where,
		orderBy(filter.Sort, "n."+node.ID, "n."+node.Title, "n."+node.CreatedAt),
		argID, argID+1)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_nodes")
	}
	defer rows.Close()

	var total int
	nodes := make([]*Node, 0, limit)
	for rows.Next() {
		n := &Node{}
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Slug, &n.Summary, &n.Published, &n.CreatedAt, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_node")
		}
		nodes = append(nodes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_nodes")
	}

	if len(nodes) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s n WHERE %s`, node.Table, where)
		if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, "count_nodes")
		}
	}
	return nodes, total, nil
}

// postgresWhere builds the WHERE clause shared by the page and count queries.
func postgresWhere(filter Filter) (string, []any) {
	node := schema.ContentNode
	index := schema.ContentNodeTerm

	var whereBuilder strings.Builder
	var args []any

	whereBuilder.WriteString("TRUE")

	if filter.PublishedOnly {
		whereBuilder.WriteString(fmt.Sprintf(" AND n.%s", node.Published))
	}

	if len(filter.Types) > 0 {
		args = append(args, filter.Types)
		whereBuilder.WriteString(fmt.Sprintf(" AND n.%s = ANY($%d)", node.Type, len(args)))
	}

	// One EXISTS per argument position (AND across positions, OR within a set)
	for _, terms := range filter.TermSets {
		if terms == nil {
			continue
		}
		args = append(args, terms)
		whereBuilder.WriteString(fmt.Sprintf(` AND EXISTS (SELECT 1 FROM %s ni WHERE ni.%s = n.%s AND ni.%s = ANY($%d))`,
			index.Table, index.NodeID, node.ID, index.TermID, len(args)))
	}

	return whereBuilder.String(), args
}
