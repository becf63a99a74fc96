package repository

import (
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/segyhp/gym-backoffice/pkg/errors"
)

// notFound turns sql.ErrNoRows into apperrors.ErrNotFound and leaves other errors wrapped as is.
func notFound(err error, entity string, id any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, apperrors.ErrNotFound)
	}
	return fmt.Errorf("get %s %v: %w", entity, id, err)
}

// requireAffected reports ErrNotFound when an UPDATE or DELETE touched no row.
func requireAffected(res sql.Result, entity string, id any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %v: %w", entity, id, apperrors.ErrNotFound)
	}
	return nil
}
