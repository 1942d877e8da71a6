package adapters

import (
	"context"
	"errors"
)

// ErrSerializationFailure is joined into errors caused by a serializable transaction losing a race.
var ErrSerializationFailure = errors.New("serialization failure")

// DBAdapter is what an engine needs from a database handle.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)

	// ExecSerializable runs query alone in a transaction with SERIALIZABLE isolation.
	ExecSerializable(ctx context.Context, query string) (DBResult, error)
}

// DBRows is the subset of a rows iterator the engines use.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult is the subset of an exec result the engines use.
type DBResult interface {
	RowsAffected() (int64, error)
}
