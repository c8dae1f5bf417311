// Package persistence opens the credential store through Bun and the sqlite
// shim driver and creates the schema the repositories expect.
package persistence

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/goliatone/go-tasks/auth"
)

// Open connects to the sqlite database behind the given DSN.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}

	// sqlite serializes writes; a single connection avoids table locked
	// errors under concurrent requests.
	sqldb.SetMaxOpenConns(1)

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// CreateSchema provisions the users table. The unique email index is what
// ultimately settles concurrent duplicate signups.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*auth.User)(nil)).
		IfNotExists().
		Exec(ctx)

	return err
}
