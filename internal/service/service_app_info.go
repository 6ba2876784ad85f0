package service

import (
	"context"

	"github.com/MKhiriev/go-spa-host/internal/config"
	"github.com/MKhiriev/go-spa-host/internal/logger"
)

type appInfoService struct {
	appVersion string
	logger     *logger.Logger
}

// NewAppInfoService reports the application version exposed on the version
// endpoint. The version must be set, either through config or defaults.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{appVersion: cfg.Version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.appVersion
}
