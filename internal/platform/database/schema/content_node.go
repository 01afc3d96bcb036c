package schema

// ContentNodeTable represents the 'content.node' table
type ContentNodeTable struct {
	Table     string
	ID        string
	Type      string
	Title     string
	Slug      string
	Summary   string
	Published string
	CreatedAt string
}

// ContentNode is the schema definition for content.node
var ContentNode = ContentNodeTable{
	Table:     "content.node",
	ID:        "id",
	Type:      "type",
	Title:     "title",
	Slug:      "slug",
	Summary:   "summary",
	Published: "published",
	CreatedAt: "createdat",
}

func (t ContentNodeTable) Columns() []string {
	return []string{t.ID, t.Type, t.Title, t.Slug, t.Summary, t.Published, t.CreatedAt}
}

// Flat returns the definition with a schema-less table name (used by SQLite).
func (t ContentNodeTable) Flat() ContentNodeTable {
	t.Table = flatten(t.Table)
	return t
}
