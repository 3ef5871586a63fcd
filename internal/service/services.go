package service

import (
	"github.com/MKhiriev/go-auth-flow/internal/config"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/store"
)

type Services struct {
	AuthService         AuthService
	VerificationService VerificationService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg.App, logger),
		VerificationService: NewVerificationService(storages.VerificationRepository, storages.UserRepository, cfg.App, logger),
	}
}
