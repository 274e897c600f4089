package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// undefinedTable is the Postgres SQLSTATE for a query against a table that
// does not exist, i.e. the setup script was never run on this database.
const undefinedTable = "42P01"

// IsUndefinedTable reports whether err was caused by a missing table, so
// callers can point the user at the setup script instead of showing a
// generic failure.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTable
}
