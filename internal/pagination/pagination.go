// Package pagination implements the cursor-based pagination engine shared
// by every listing endpoint.
//
// The resume token is always the id of the last row of the previous page,
// regardless of the display sort column: id is the only column with a
// guaranteed total order, so cursoring on it cannot skip or duplicate rows
// when the sort column holds ties. The requested order is therefore always
// a dual key, order_by first and id second.
package pagination

import (
	"fmt"

	"gorm.io/gorm"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultLimit is the page size applied when the caller does not send one.
const DefaultLimit = 25

// Params carries the caller-supplied pagination inputs.
type Params struct {
	Cursor    *int64
	Limit     int
	OrderBy   string
	Direction Direction
}

// OrderBy echoes the effective sort back to the caller.
type OrderBy struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// Meta is the pagination envelope returned alongside every page.
type Meta struct {
	HasMore    bool    `json:"hasMore"`
	NextCursor *int64  `json:"nextCursor"`
	Total      int64   `json:"total"`
	Limit      int     `json:"limit"`
	OrderBy    OrderBy `json:"orderBy"`
}

// Page is one page of results plus its pagination metadata. Not persisted.
type Page[T any] struct {
	Items []T
	Meta
}

// Cursorable is implemented by every paginated model; it exposes the
// primary key the cursor is built from.
type Cursorable interface {
	CursorID() int64
}

func (p Params) normalize() Params {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.OrderBy == "" {
		p.OrderBy = "id"
	}
	if p.Direction == "" {
		p.Direction = Asc
	}
	return p
}

func (p Params) validate(schema *Schema) error {
	if p.Direction != Asc && p.Direction != Desc {
		return &InvalidSortDirectionError{Direction: string(p.Direction)}
	}
	if !schema.Sortable(p.OrderBy) {
		return &InvalidSortColumnError{Column: p.OrderBy, Allowed: schema.SortableColumns()}
	}
	return nil
}

// Paginate runs one cursor-paginated read over base, which must already
// carry the caller's filter predicate (and Model). The total count runs
// concurrently against the same predicate; both queries are read-only and
// order-independent.
func Paginate[T Cursorable](base *gorm.DB, schema *Schema, p Params) (*Page[T], error) {
	p = p.normalize()
	if err := p.validate(schema); err != nil {
		return nil, err
	}

	pageQuery := base.Session(&gorm.Session{})
	countQuery := base.Session(&gorm.Session{})

	type countResult struct {
		total int64
		err   error
	}
	counted := make(chan countResult, 1)
	go func() {
		var total int64
		err := countQuery.Count(&total).Error
		counted <- countResult{total: total, err: err}
	}()

	if cols := schema.ProjectedColumns(); len(cols) > 0 {
		pageQuery = pageQuery.Select(cols)
	}

	// Dual-key order: requested column(s) first, id as tie-break. Both the
	// column names and the direction come from whitelists.
	for _, col := range schema.SortExprs(p.OrderBy) {
		pageQuery = pageQuery.Order(fmt.Sprintf("%s %s", col, p.Direction))
	}
	if p.OrderBy != "id" {
		pageQuery = pageQuery.Order(fmt.Sprintf("id %s", p.Direction))
	}

	if p.Cursor != nil {
		if p.Direction == Asc {
			pageQuery = pageQuery.Where("id > ?", *p.Cursor)
		} else {
			pageQuery = pageQuery.Where("id < ?", *p.Cursor)
		}
	}

	// Overfetch one row past the limit; its presence is the hasMore signal.
	rows := []T{}
	if err := pageQuery.Limit(p.Limit + 1).Find(&rows).Error; err != nil {
		<-counted
		return nil, err
	}

	hasMore := len(rows) > p.Limit
	if hasMore {
		rows = rows[:p.Limit]
	}

	var nextCursor *int64
	if hasMore {
		id := rows[len(rows)-1].CursorID()
		nextCursor = &id
	}

	count := <-counted
	if count.err != nil {
		return nil, count.err
	}

	return &Page[T]{
		Items: rows,
		Meta: Meta{
			HasMore:    hasMore,
			NextCursor: nextCursor,
			Total:      count.total,
			Limit:      p.Limit,
			OrderBy:    OrderBy{Column: p.OrderBy, Direction: p.Direction},
		},
	}, nil
}
