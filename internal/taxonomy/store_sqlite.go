// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/taibuivan/tagfilter/internal/platform/database/schema"
	"github.com/taibuivan/tagfilter/internal/platform/dberr"
)

// SQLiteRepository implements [Repository] on database/sql with the modernc driver.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository constructs a SQLite backed taxonomy store.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var (
	liteVocabulary = schema.TaxonomyVocabulary.Flat()
	liteTerm       = schema.TaxonomyTerm.Flat()

	liteTermColumns = strings.Join(liteTerm.Columns(), ", ")
)

func (repository *SQLiteRepository) ListVocabularies(context context.Context) ([]*Vocabulary, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		liteVocabulary.ID, liteVocabulary.Name, liteVocabulary.Description, liteVocabulary.Weight,
		liteVocabulary.Table, liteVocabulary.Weight, liteVocabulary.Name)

	rows, err := repository.db.QueryContext(context, query)
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

func (repository *SQLiteRepository) GetVocabulary(context context.Context, id string) (*Vocabulary, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = ?`,
		liteVocabulary.ID, liteVocabulary.Name, liteVocabulary.Description, liteVocabulary.Weight,
		liteVocabulary.Table, liteVocabulary.ID)

	v := &Vocabulary{}
	if err := repository.db.QueryRowContext(context, query, id).Scan(&v.ID, &v.Name, &v.Description, &v.Weight); err != nil {
		return nil, dberr.Wrap(err, "get_vocabulary")
	}
	return v, nil
}

func (repository *SQLiteRepository) ListTerms(context context.Context, vocabularyID string) ([]*Term, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? ORDER BY %s ASC, %s ASC`,
		liteTermColumns, liteTerm.Table, liteTerm.VocabularyID, liteTerm.Weight, liteTerm.Name)

	rows, err := repository.db.QueryContext(context, query, vocabularyID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_terms")
	}
	return scanSQLTerms(rows, "list_terms")
}

func (repository *SQLiteRepository) GetTermByID(context context.Context, id int) (*Term, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`, liteTermColumns, liteTerm.Table, liteTerm.ID)

	t := &Term{}
	err := repository.db.QueryRowContext(context, query, id).Scan(
		&t.ID, &t.VocabularyID, &t.Name, &t.Slug, &t.Description, &t.Weight,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_term_by_id")
	}
	return t, nil
}

func (repository *SQLiteRepository) FindIDsBySlug(context context.Context, slug string, vocabularies []string) ([]int, error) {
	query, args := liteSlugQuery(liteTerm.ID, slug, vocabularies)

	rows, err := repository.db.QueryContext(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_term_ids_by_slug")
	}
	defer rows.Close()

	ids := make([]int, 0, 1)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "find_term_ids_by_slug")
		}
		ids = append(ids, id)
	}
	return ids, dberr.Wrap(rows.Err(), "find_term_ids_by_slug")
}

func (repository *SQLiteRepository) FindBySlug(context context.Context, slug string, vocabularies []string) ([]*Term, error) {
	query, args := liteSlugQuery(liteTermColumns, slug, vocabularies)

	rows, err := repository.db.QueryContext(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_terms_by_slug")
	}
	return scanSQLTerms(rows, "find_terms_by_slug")
}

// liteSlugQuery expands the vocabulary allow-list into an IN list; SQLite has no array binding.
func liteSlugQuery(columns, slug string, vocabularies []string) (string, []any) {
	var queryBuilder strings.Builder
	args := []any{slug}

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`, columns, liteTerm.Table, liteTerm.Slug))

	if len(vocabularies) > 0 {
		placeholders := make([]string, len(vocabularies))
		for i, vocabulary := range vocabularies {
			placeholders[i] = "?"
			args = append(args, vocabulary)
		}
		queryBuilder.WriteString(fmt.Sprintf(` AND %s IN (%s)`, liteTerm.VocabularyID, strings.Join(placeholders, ", ")))
	}

	queryBuilder.WriteString(fmt.Sprintf(` ORDER BY %s ASC`, liteTerm.ID))
	return queryBuilder.String(), args
}

func scanSQLTerms(rows *sql.Rows, action string) ([]*Term, error) {
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
