package form

import (
	"fmt"

	"github.com/google/uuid"
)

// Row pairs an entry with the stable identifier assigned when it was
// appended. The ID never changes, so the UI can key its rendering on it
// while positions shift around deletions.
type Row[T any] struct {
	ID    string `json:"id"`
	Entry T      `json:"entry"`
}

// SubList is an ordered, user-editable collection of typed rows. It
// enforces no minimum or maximum count; lists may be emptied to zero.
//
// Index arguments must be in range: the UI only ever operates on rows it
// is rendering, so an out-of-range index is a programming error and
// panics. Callers translating untrusted input bounds-check with Len
// first.
type SubList[T any] struct {
	rows []Row[T]
}

// NewSubList returns an empty sub-list.
func NewSubList[T any]() *SubList[T] {
	return &SubList[T]{}
}

// Len returns the number of rows.
func (l *SubList[T]) Len() int {
	return len(l.rows)
}

// Append inserts the entry at the end and returns the new row.
func (l *SubList[T]) Append(entry T) Row[T] {
	row := Row[T]{ID: uuid.New().String(), Entry: entry}
	l.rows = append(l.rows, row)
	return row
}

// UpdateAt replaces the entry at index i, keeping the row's identity.
func (l *SubList[T]) UpdateAt(i int, entry T) Row[T] {
	l.check(i)
	l.rows[i].Entry = entry
	return l.rows[i]
}

// RemoveAt deletes the row at index i. Rows after i shift down one
// position; their identity and relative order are unchanged.
func (l *SubList[T]) RemoveAt(i int) {
	l.check(i)
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
}

// Rows returns a copy of the rows in order.
func (l *SubList[T]) Rows() []Row[T] {
	rows := make([]Row[T], len(l.rows))
	copy(rows, l.rows)
	return rows
}

// Entries returns the entry values in order, without row identity.
func (l *SubList[T]) Entries() []T {
	entries := make([]T, 0, len(l.rows))
	for _, row := range l.rows {
		entries = append(entries, row.Entry)
	}
	return entries
}

func (l *SubList[T]) check(i int) {
	if i < 0 || i >= len(l.rows) {
		panic(fmt.Sprintf("form: row index %d out of range [0,%d)", i, len(l.rows)))
	}
}
