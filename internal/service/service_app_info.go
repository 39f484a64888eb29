package service

import (
	"context"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/config"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/models"
)

type appInfoService struct {
	appVersion string
	publicURL  string
	buildInfo  models.AppBuildInfo
	backend    adapter.BackendAdapter

	logger *logger.Logger
}

func NewAppInfoService(cfg *config.GatewayConfig, buildInfo models.AppBuildInfo, backend adapter.BackendAdapter, logger *logger.Logger) (AppInfoService, error) {
	if cfg == nil || cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if backend == nil {
		return nil, ErrNoBackendAdapter
	}

	return &appInfoService{
		appVersion: cfg.App.Version,
		publicURL:  cfg.Server.PublicURL,
		buildInfo:  buildInfo,
		backend:    backend,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version:      s.appVersion,
		BuildVersion: s.buildInfo.BuildVersion(),
		BuildDate:    s.buildInfo.BuildDate(),
		BuildCommit:  s.buildInfo.BuildCommit(),
	}
}

// Health reports the gateway as up along with the versioned backend base it
// resolves against. The backend is not contacted.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:    "ok",
		Version:   s.appVersion,
		Backend:   s.backend.Resolve(""),
		PublicURL: s.publicURL,
	}
}
