package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

func (dbr *DBRepository) BeginTransaction(ctx context.Context) (tx *sqlx.Tx, err error) {

	return dbr.db.BeginTxx(ctx, &sql.TxOptions{})

}

// inTransaction runs fn in a transaction, committing only if fn succeeds.
func (dbr *DBRepository) inTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := dbr.BeginTransaction(ctx)
	if err != nil {
		return errors.Wrap(err, "BeginTransaction")
	}

	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "Commit")
	}

	return nil
}
