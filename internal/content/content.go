// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package content lists the nodes a view renders, filtered through the taxonomy index.
package content

import "time"

// Node is a listable piece of content.
type Node struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   *string   `json:"summary,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

// Sort orders of a listing.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortTitle  = "title"
)

// SortOrders lists every accepted [Filter.Sort] value.
var SortOrders = []string{SortNewest, SortOldest, SortTitle}

// Filter narrows a listing.
type Filter struct {
	// TermSets holds one set per contextual argument. A node must carry at
	// least one term of every set. A nil set is skipped; an empty set matches nothing.
	TermSets [][]int

	// Types restricts node types; empty means every type.
	Types []string

	PublishedOnly bool

	// Sort is one of [SortOrders]; empty means newest first.
	Sort string
}
