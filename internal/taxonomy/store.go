// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import "context"

// # Taxonomy Data Access

// Repository defines the data access contract for vocabularies and terms.
type Repository interface {
	ListVocabularies(context context.Context) ([]*Vocabulary, error)

	// GetVocabulary returns dberr.ErrNotFound when id is unknown.
	GetVocabulary(context context.Context, id string) (*Vocabulary, error)

	// ListTerms returns the terms of one vocabulary ordered by weight, then name.
	ListTerms(context context.Context, vocabularyID string) ([]*Term, error)

	// GetTermByID returns dberr.ErrNotFound when id is unknown.
	GetTermByID(context context.Context, id int) (*Term, error)

	/*
		FindIDsBySlug returns the identifiers of every term whose slug equals slug.

		Parameters:
		  - context: context.Context
		  - slug: string (compared byte-for-byte)
		  - vocabularies: []string (optional allow-list; empty means any vocabulary)

		Returns:
		  - []int: Matching identifiers in ascending order, empty when none match
		  - error: Database failures only; no match is not an error
	*/
	FindIDsBySlug(context context.Context, slug string, vocabularies []string) ([]int, error)

	// FindBySlug is FindIDsBySlug returning hydrated terms.
	FindBySlug(context context.Context, slug string, vocabularies []string) ([]*Term, error)
}
