package http

import (
	"github.com/MKhiriev/go-spa-host/internal/config"
	"github.com/MKhiriev/go-spa-host/internal/logger"
	"github.com/MKhiriev/go-spa-host/internal/service"
)

type Handler struct {
	services *service.Services
	static   config.Static

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Static, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		static:   cfg,
		logger:   logger,
	}
}
