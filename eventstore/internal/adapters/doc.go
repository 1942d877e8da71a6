// Package adapters hides the differences between pgxpool, database/sql and sqlx
// behind the small DBAdapter interface the engines are written against.
package adapters
