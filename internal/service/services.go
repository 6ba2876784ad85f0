package service

import (
	"github.com/MKhiriev/go-spa-host/internal/config"
	"github.com/MKhiriev/go-spa-host/internal/logger"
)

type Services struct {
	AppInfoService  AppInfoService
	ArtifactService ArtifactService
}

func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:  appInfo,
		ArtifactService: NewArtifactService(cfg.Resolver, logger),
	}, nil
}
