package pagination

import (
	"fmt"
	"strings"
)

// InvalidSortColumnError is returned before any query runs when order_by
// is not in the entity's sortable whitelist.
type InvalidSortColumnError struct {
	Column  string
	Allowed []string
}

func (e *InvalidSortColumnError) Error() string {
	return fmt.Sprintf("invalid sort column %q, must be one of: %s",
		e.Column, strings.Join(e.Allowed, ", "))
}

// InvalidSortDirectionError is returned before any query runs when the
// direction is neither "asc" nor "desc".
type InvalidSortDirectionError struct {
	Direction string
}

func (e *InvalidSortDirectionError) Error() string {
	return fmt.Sprintf("invalid sort direction %q, must be either %q or %q",
		e.Direction, Asc, Desc)
}
