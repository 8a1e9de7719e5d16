// Package sqlite provides an interface into SQLite compatible with the rest
// of the jelcol package.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dekarrin/jelcol"
	"modernc.org/sqlite"
)

// Open opens the SQLite database in the given file, creating it if needed.
// Use ":memory:" for a database that lives only as long as the process.
func Open(file string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, WrapDBError(err)
	}

	return db, nil
}

// WrapDBError wraps an error from the SQLite engine into an error useable
// with the jelcol sentinel errors. It should be called on any error
// returned from SQLite before a store passes the error back to a caller.
func WrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		primaryCode := sqliteErr.Code() & 0xff
		if primaryCode == 19 {
			return fmt.Errorf("%w: %s", jelcol.ErrConstraintViolation, err.Error())
		}
		if primaryCode == 1 {
			// this is a generic error and thus the string is not descriptive,
			// so preserve the original error instead
			return err
		}
		return fmt.Errorf("%s", sqlite.ErrorCodeString[sqliteErr.Code()])
	} else if errors.Is(err, sql.ErrNoRows) {
		return jelcol.ErrNotFound
	}
	return err
}
