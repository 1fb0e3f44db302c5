package service

import (
	"github.com/elparchetipk/go-auth-api/internal/config"
	"github.com/elparchetipk/go-auth-api/internal/logger"
	"github.com/elparchetipk/go-auth-api/internal/store"
)

// Services aggregates every business-logic service exposed to the transport
// layer.
type Services struct {
	AuthService AuthService
}

// NewServices wires all services over the given storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	logger.Info().Msg("creating services...")

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
	}
}
