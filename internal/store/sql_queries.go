package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (uid, email, phone_number, password_hash, anonymous, created_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	createAttempt = `INSERT INTO verification_attempts (verification_id, phone_number, code_digest, expires_at, created_at)
    VALUES ($1, $2, $3, $4, $5);`

	findAttempt = `SELECT verification_id, phone_number, code_digest, expires_at, created_at
    FROM verification_attempts
    WHERE verification_id = $1;`

	deleteAttempt = `DELETE FROM verification_attempts
    WHERE verification_id = $1;`
)

// user lookup columns, in scan order
const userColumns = "uid, email, phone_number, password_hash, anonymous, created_at"

// psql builds queries with $N placeholders, which both the pgx and the
// go-sqlite3 drivers accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindUserQuery constructs a single-column user lookup. The column name
// must come from a compile-time constant, never from user input.
func buildFindUserQuery(column string, value any) (string, []any, error) {
	return psql.
		Select(userColumns).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
}

// buildPurgeExpiredQuery constructs the bulk delete of verification attempts
// whose expiry lies strictly before now.
func buildPurgeExpiredQuery(now time.Time) (string, []any, error) {
	return psql.
		Delete("verification_attempts").
		Where(sq.Lt{"expires_at": now}).
		ToSql()
}
