package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("record not found")

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// wrap tags err with the calling function and folds pgx.ErrNoRows into ErrNotFound.
func wrap(fn string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", fn, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", fn, err)
}
