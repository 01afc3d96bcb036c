package schema

// TaxonomyVocabularyTable represents the 'taxonomy.vocabulary' table
type TaxonomyVocabularyTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Weight      string
}

// TaxonomyVocabulary is the schema definition for taxonomy.vocabulary
var TaxonomyVocabulary = TaxonomyVocabularyTable{
	Table:       "taxonomy.vocabulary",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Weight:      "weight",
}

// Flat returns the definition with a schema-less table name (used by SQLite).
func (t TaxonomyVocabularyTable) Flat() TaxonomyVocabularyTable {
	t.Table = flatten(t.Table)
	return t
}
