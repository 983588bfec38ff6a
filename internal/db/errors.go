package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

func notFound(table string, id uuid.UUID) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, table, id)
}

// mapNoRows converts sql.ErrNoRows from a single-row statement into ErrNotFound.
func mapNoRows(err error, table string, id uuid.UUID) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(table, id)
	}
	return err
}

// expectAffected turns a zero-row Exec result into ErrNotFound.
func expectAffected(res sql.Result, table string, id uuid.UUID) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound(table, id)
	}
	return nil
}
