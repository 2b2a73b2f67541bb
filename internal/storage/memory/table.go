package memory

import (
	"sync"

	"github.com/VitaminP8/board/internal/storage"
)

// table is the keyed collection behind every in-memory store. Rows go in and
// come out as copies, so nothing outside the table aliases its state.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[int64]T
	seq   storage.Sequence
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	return &table[T]{
		rows:  make(map[int64]T),
		clone: clone,
	}
}

// insert draws the next id and stores the row built for it.
func (t *table[T]) insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.seq.Next()
	row := build(id)
	t.rows[id] = t.clone(row)
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(row), true
}

// list returns copies of the rows matching keep, or of all rows when keep is
// nil. Order is unspecified.
func (t *table[T]) list(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if keep == nil || keep(row) {
			rows = append(rows, t.clone(row))
		}
	}
	return rows
}

// modify applies fn to the stored row in place.
func (t *table[T]) modify(id int64, fn func(row *T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&row)
	t.rows[id] = row
	return t.clone(row), true
}

func (t *table[T]) remove(id int64) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if ok {
		delete(t.rows, id)
	}
	return row, ok
}

// removeMany deletes every listed id under one lock. Ids that are not stored
// come back in missing.
func (t *table[T]) removeMany(ids []int64) (removed []T, missing []int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range ids {
		row, ok := t.rows[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		delete(t.rows, id)
		removed = append(removed, row)
	}
	return removed, missing
}

func (t *table[T]) removeWhere(match func(T) bool) []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	var removed []T
	for id, row := range t.rows {
		if match(row) {
			delete(t.rows, id)
			removed = append(removed, row)
		}
	}
	return removed
}
