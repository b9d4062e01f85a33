// file: internals/helpers/pg_errors.go
package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation mendeteksi pelanggaran unique index dari postgres.
// Dipakai untuk idempotency key kwitansi dan guard (santri, jenis, periode).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
