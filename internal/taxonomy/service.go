// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"context"
	"log/slog"

	"github.com/taibuivan/tagfilter/internal/platform/apperr"
	"github.com/taibuivan/tagfilter/internal/platform/dberr"
	"github.com/taibuivan/tagfilter/pkg/slice"
)

// # Service Layer

// Service exposes read access to vocabularies and terms.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new taxonomy [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListVocabularies(context context.Context) ([]*Vocabulary, error) {
	return service.repo.ListVocabularies(context)
}

/*
ListTerms returns the terms of a vocabulary.

Returns:
  - []*Term: Terms ordered by weight, then name
  - error: NOT_FOUND naming the vocabulary when it does not exist
*/
func (service *Service) ListTerms(context context.Context, vocabularyID string) ([]*Term, error) {
	if _, err := service.repo.GetVocabulary(context, vocabularyID); err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Vocabulary")
		}
		return nil, err
	}
	return service.repo.ListTerms(context, vocabularyID)
}

func (service *Service) GetTerm(context context.Context, id int) (*Term, error) {
	term, err := service.repo.GetTermByID(context, id)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFound("Term")
	}
	return term, err
}

/*
FindBySlug returns every term carrying slug, optionally limited to vocabularies.

More than one result means the slug is ambiguous for slug-based arguments,
which resolve to the lowest identifier. That case is logged as a warning.
*/
func (service *Service) FindBySlug(context context.Context, slug string, vocabularies []string) ([]*Term, error) {
	terms, err := service.repo.FindBySlug(context, slug, vocabularies)
	if err != nil {
		return nil, err
	}

	if len(terms) == 0 {
		return nil, apperr.NotFound("Term")
	}

	if len(terms) > 1 {
		service.logger.WarnContext(context, "duplicate_term_slug",
			slog.String("slug", slug),
			slog.Int("matches", len(terms)),
			slog.Any("vocabularies", slice.Map(terms, func(term *Term) string { return term.VocabularyID })),
		)
	}
	return terms, nil
}
