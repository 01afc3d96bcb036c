// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"fmt"
)

// Repository defines the data access contract for content listings.
type Repository interface {
	// List returns one page of nodes matching filter and the total match count.
	List(context context.Context, filter Filter, limit, offset int) ([]*Node, int, error)
}

// orderBy maps a sort order to an ORDER BY clause over the given columns.
func orderBy(sort, id, title, createdAt string) string {
	switch sort {
	case SortOldest:
		return fmt.Sprintf("%s ASC, %s ASC", createdAt, id)
	case SortTitle:
		return fmt.Sprintf("%s ASC, %s ASC", title, id)
	default:
		return fmt.Sprintf("%s DESC, %s DESC", createdAt, id)
	}
}
