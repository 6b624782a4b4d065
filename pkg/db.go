package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgSerializationFailure = "40001"

// IsSerializationFailure reports a conflict between concurrent REPEATABLE READ
// or SERIALIZABLE transactions; the caller may retry the whole transaction.
func IsSerializationFailure(err error) bool {
	return hasPgCode(err, pgSerializationFailure)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
