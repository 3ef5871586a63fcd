package store

import "github.com/MKhiriev/go-auth-flow/internal/logger"

type Storages struct {
	UserRepository         UserRepository
	VerificationRepository VerificationRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		VerificationRepository: NewVerificationRepository(db, log),
	}
}
