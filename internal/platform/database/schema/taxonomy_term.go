package schema

// TaxonomyTermTable represents the 'taxonomy.term' table
type TaxonomyTermTable struct {
	Table        string
	ID           string
	VocabularyID string
	Name         string
	Slug         string
	Description  string
	Weight       string
}

// TaxonomyTerm is the schema definition for taxonomy.term
var TaxonomyTerm = TaxonomyTermTable{
	Table:        "taxonomy.term",
	ID:           "id",
	VocabularyID: "vocabularyid",
	Name:         "name",
	Slug:         "slug",
	Description:  "description",
	Weight:       "weight",
}

func (t TaxonomyTermTable) Columns() []string {
	return []string{t.ID, t.VocabularyID, t.Name, t.Slug, t.Description, t.Weight}
}

// Flat returns the definition with a schema-less table name (used by SQLite).
func (t TaxonomyTermTable) Flat() TaxonomyTermTable {
	t.Table = flatten(t.Table)
	return t
}
