package schema

import "strings"

// ContentNodeTermTable represents the 'content.nodeterm' junction table
// (the taxonomy index: which node carries which term).
type ContentNodeTermTable struct {
	Table  string
	NodeID string
	TermID string
}

// ContentNodeTerm is the schema definition for content.nodeterm
var ContentNodeTerm = ContentNodeTermTable{
	Table:  "content.nodeterm",
	NodeID: "nodeid",
	TermID: "termid",
}

// Flat returns the definition with a schema-less table name (used by SQLite).
func (t ContentNodeTermTable) Flat() ContentNodeTermTable {
	t.Table = flatten(t.Table)
	return t
}

// flatten turns "schema.table" into "schema_table".
func flatten(table string) string {
	return strings.ReplaceAll(table, ".", "_")
}
