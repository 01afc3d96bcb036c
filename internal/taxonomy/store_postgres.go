// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/tagfilter/internal/platform/database/schema"
	"github.com/taibuivan/tagfilter/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed taxonomy store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	pgVocabularyColumns = fmt.Sprintf("%s, %s, %s, %s",
		schema.TaxonomyVocabulary.ID, schema.TaxonomyVocabulary.Name,
		schema.TaxonomyVocabulary.Description, schema.TaxonomyVocabulary.Weight)
	pgTermColumns = strings.Join(schema.TaxonomyTerm.Columns(), ", ")
)

func (repository *PostgresRepository) ListVocabularies(context context.Context) ([]*Vocabulary, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		pgVocabularyColumns, schema.TaxonomyVocabulary.Table,
		schema.TaxonomyVocabulary.Weight, schema.TaxonomyVocabulary.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_vocabularies")
	}
	defer rows.Close()

	vocabularies := make([]*Vocabulary, 0)
	for rows.Next() {
		v := &Vocabulary{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Weight); err != nil {
			return nil, dberr.Wrap(err, "scan_vocabulary")
		}
		vocabularies = append(vocabularies, v)
	}

	return vocabularies, dberr.Wrap(rows.Err(), "list_vocabularies")
}

func (repository *PostgresRepository) GetVocabulary(context context.Context, id string) (*Vocabulary, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		pgVocabularyColumns, schema.TaxonomyVocabulary.Table, schema.TaxonomyVocabulary.ID)

	v := &Vocabulary{}
	err := repository.db.QueryRow(context, query, id).Scan(&v.ID, &v.Name, &v.Description, &v.Weight)
	if err != nil {
		return nil, dberr.Wrap(err, "get_vocabulary")
	}
	return v, nil
}

func (repository *PostgresRepository) ListTerms(context context.Context, vocabularyID string) ([]*Term, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		pgTermColumns, schema.TaxonomyTerm.Table, schema.TaxonomyTerm.VocabularyID,
		schema.TaxonomyTerm.Weight, schema.TaxonomyTerm.Name)

	rows, err := repository.db.Query(context, query, vocabularyID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_terms")
	}
	return collectTerms(rows, "list_terms")
}

func (repository *PostgresRepository) GetTermByID(context context.Context, id int) (*Term, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		pgTermColumns, schema.TaxonomyTerm.Table, schema.TaxonomyTerm.ID)

	t := &Term{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&t.ID, &t.VocabularyID, &t.Name, &t.Slug, &t.Description, &t.Weight,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_term_by_id")
	}
	return t, nil
}

/*
FindIDsBySlug issues the single slug lookup behind slug-based contextual arguments.

The query has one condition on the slug, plus a vocabulary condition only when
an allow-list is supplied. Both are served by idx_term_vocabulary_slug / idx_term_slug.
*/
func (repository *PostgresRepository) FindIDsBySlug(context context.Context, slug string, vocabularies []string) ([]int, error) {
	query, args := repository.slugQuery(schema.TaxonomyTerm.ID, slug, vocabularies)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_term_ids_by_slug")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, dberr.Wrap(err, "find_term_ids_by_slug")
	}
	return ids, nil
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string, vocabularies []string) ([]*Term, error) {
	query, args := repository.slugQuery(pgTermColumns, slug, vocabularies)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_terms_by_slug")
	}
	return collectTerms(rows, "find_terms_by_slug")
}

func (repository *PostgresRepository) slugQuery(columns, slug string, vocabularies []string) (string, []any) {
	var queryBuilder strings.Builder
	args := []any{slug}

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		columns, schema.TaxonomyTerm.Table, schema.TaxonomyTerm.Slug))

	if len(vocabularies) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(` AND %s = ANY($2)`, schema.TaxonomyTerm.VocabularyID))
		args = append(args, vocabularies)
	}

	queryBuilder.WriteString(fmt.Sprintf(` ORDER BY %s ASC`, schema.TaxonomyTerm.ID))
	return queryBuilder.String(), args
}

func collectTerms(rows pgx.Rows, action string) ([]*Term, error) {
	defer rows.Close()

	terms := make([]*Term, 0)
	for rows.Next() {
		t := &Term{}
		if err := rows.Scan(&t.ID, &t.VocabularyID, &t.Name, &t.Slug, &t.Description, &t.Weight); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		terms = append(terms, t)
	}
	return terms, dberr.Wrap(rows.Err(), action)
}
