// Package storage holds what every storage backend shares: identity
// sequencing and the not-found error.
package storage

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var ErrNotFound = errors.New("not found")

// NotFoundError is returned by update and delete operations when the target
// is missing, and by lookups that come back empty.
type NotFoundError struct {
	Entity string
	Field  string
	Value  any
}

func NotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, Field: "ID", Value: id}
}

func NotFoundBy(entity, field string, value any) *NotFoundError {
	return &NotFoundError{Entity: entity, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %v not found", e.Entity, e.Field, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Sequence hands out identifiers 1, 2, 3, ... and never repeats one.
type Sequence struct {
	last atomic.Int64
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
