package pagination

import "sort"

// Column describes how a single column of an entity may be used by the
// listing and fetch paths.
type Column struct {
	// Sortable marks the column as a legal order_by value.
	Sortable bool
	// Projectable marks the column for inclusion in SELECT lists. Sort
	// aliases (no backing column) and secret columns leave this false.
	Projectable bool
	// SortExpr lists the real columns an alias sorts by. Empty means the
	// column sorts by itself.
	SortExpr []string
}

// Schema is the per-entity column descriptor shared by the pagination
// engine and the projection logic, so the two can never drift apart.
type Schema struct {
	Table   string
	Columns map[string]Column
}

// Sortable reports whether column is a legal sort key.
func (s *Schema) Sortable(column string) bool {
	c, ok := s.Columns[column]
	return ok && c.Sortable
}

// SortableColumns returns the sorted whitelist of legal order_by values,
// used verbatim in InvalidSortColumnError messages.
func (s *Schema) SortableColumns() []string {
	cols := make([]string, 0, len(s.Columns))
	for name, c := range s.Columns {
		if c.Sortable {
			cols = append(cols, name)
		}
	}
	sort.Strings(cols)
	return cols
}

// ProjectedColumns returns the SELECT list for this entity in a stable
// order.
func (s *Schema) ProjectedColumns() []string {
	cols := make([]string, 0, len(s.Columns))
	for name, c := range s.Columns {
		if c.Projectable {
			cols = append(cols, name)
		}
	}
	sort.Strings(cols)
	return cols
}

// SortExprs resolves column to the real columns it orders by.
func (s *Schema) SortExprs(column string) []string {
	if c, ok := s.Columns[column]; ok && len(c.SortExpr) > 0 {
		return c.SortExpr
	}
	return []string{column}
}
