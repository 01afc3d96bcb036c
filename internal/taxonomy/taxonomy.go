// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package taxonomy owns vocabularies and terms: the categorisation records that
content listings are filtered by.

A [Term] carries an optional human-readable Slug. Slugs are expected to be
unique within the vocabularies a view resolves against, but nothing here
enforces it; duplicates are surfaced by [Service.FindBySlug] so operators can
clean them up.
*/
package taxonomy

// Vocabulary groups terms (e.g. "tags", "categories").
type Vocabulary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Weight      int     `json:"weight"`
}

// Term is a single categorisation record within a [Vocabulary].
type Term struct {
	ID           int     `json:"id"`
	VocabularyID string  `json:"vocabulary_id"`
	Name         string  `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	Weight       int     `json:"weight"`
}
