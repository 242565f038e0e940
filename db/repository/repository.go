package repository

import (
	"context"

	twitch_client "twitch_gateway/internal/client/twitch-client"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/lib/pq"
)

var _ twitch_client.TokenStore = (*DBRepository)(nil)

// DBRepository keeps the twitch app token in postgres so restarts do not reissue it.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{
		db: db,
	}
}

// Connect opens a postgres pool for dsn and makes sure the server answers.
func Connect(ctx context.Context, dsn string) (*DBRepository, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to db")
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cannot ping db")
	}

	return NewDBRepository(db), nil
}

func (dbr *DBRepository) Close() error {
	return dbr.db.Close()
}
