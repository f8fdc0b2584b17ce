package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/sealed-vitae/internal/config"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports the configured application version. main fills
// cfg.Version from the linker-injected build version when it is not set.
func NewAppInfoService(cfg config.App) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
