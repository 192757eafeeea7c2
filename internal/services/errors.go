package services

import "fmt"

// NotFoundError signals that a referenced row does not exist. ID is zero
// when no single row can be named (e.g. a missing permission inside a
// batch).
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s not found by id: %d", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError signals a uniqueness violation detected before insert.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists with %s %q", e.Resource, e.Field, e.Value)
}
