package adapters

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// classify joins ErrSerializationFailure into err if Postgres aborted the statement
// because of a concurrent transaction, so engines can report a concurrency conflict.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && isRetryableSQLState(pgxErr.Code) {
		return errors.Join(ErrSerializationFailure, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && isRetryableSQLState(string(pqErr.Code)) {
		return errors.Join(ErrSerializationFailure, err)
	}

	return err
}

func isRetryableSQLState(code string) bool {
	return code == sqlStateSerializationFailure || code == sqlStateDeadlockDetected
}
