package store

import (
	"database/sql"

	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/migrations"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps the raw [sql.DB] connection together with the driver name and the
// driver-specific error classifier. Repositories operate on DB only and stay
// agnostic of which backend is connected.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Retryable reports whether err is classified as transient for the connected
// backend. Always false when no classifier is configured (sqlite).
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
