package store

import "errors"

// rowScanner abstracts sql.Row and sql.Rows so each entity has a single
// scan function shared by point lookups and list queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// errNoRow is the internal marker scan functions return for sql.ErrNoRows.
// Callers translate it to a NotFoundError with the collection and id.
var errNoRow = errors.New("no row")
