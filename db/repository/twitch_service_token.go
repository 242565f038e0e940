package repository

import (
	"context"
	"database/sql"

	"twitch_gateway/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// GetNotExpiredToken returns the newest usable token, nil if there is none.
func (dbr *DBRepository) GetNotExpiredToken(ctx context.Context) (token *models.CachedToken, err error) {

	query := `
		select 
			tt."token",
			tt.expires_at
		from twitch_tokens tt
		where tt.is_expired = false
			and tt.expires_at > now()
		order by tt.created_at 
		desc
		limit 1;
	`

	var data models.CachedToken
	err = dbr.db.GetContext(ctx, &data, query)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "GetNotExpiredToken")
	}

	return &data, nil
}

// AddToken stores token and retires every token stored before it.
func (dbr *DBRepository) AddToken(ctx context.Context, token models.CachedToken) error {

	return dbr.inTransaction(ctx, func(tx *sqlx.Tx) error {

		query := `
			update twitch_tokens 
			set is_expired = true
			where is_expired = false;
		`

		_, err := tx.ExecContext(ctx, query)
		if err != nil {
			return errors.Wrap(err, "expire old tokens")
		}

		query = `
			insert into twitch_tokens ("token", expires_at) values ($1, $2)
			on conflict ("token") do update
				set (expires_at, is_expired) = ($2, false);
		`

		res, err := tx.ExecContext(ctx, query, token.Value, token.ExpiresAt)
		if err != nil {
			return errors.Wrap(err, "insert token")
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}

		if n < 1 {
			return errors.New("no rows insert")
		}

		return nil
	})
}

func (dbr *DBRepository) SetExpiredToken(ctx context.Context, token string) (err error) {

	query := `
		update twitch_tokens 
		set is_expired = true
		where "token" = $1;
	`

	res, err := dbr.db.ExecContext(ctx, query, token)
	if err != nil {
		return errors.Wrap(err, "SetExpiredToken")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n < 1 {
		return errors.New("token not found")
	}

	return
}
