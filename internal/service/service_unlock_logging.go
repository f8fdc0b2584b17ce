package service

import (
	"context"
	"time"

	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/models"
)

// UnlockLoggingService records every unlock attempt without the credential.
type UnlockLoggingService struct {
	inner  UnlockService
	logger *logger.Logger
}

func NewUnlockLoggingService(logger *logger.Logger) UnlockServiceWrapper {
	return &UnlockLoggingService{logger: logger}
}

func (l *UnlockLoggingService) Wrap(inner UnlockService) UnlockService {
	return &UnlockLoggingService{inner: inner, logger: l.logger}
}

func (l *UnlockLoggingService) Unlock(ctx context.Context, credential string) (models.View, error) {
	start := time.Now()
	view, err := l.inner.Unlock(ctx, credential)
	if err != nil {
		l.logger.Err(err).Str("func", "UnlockService.Unlock").Dur("elapsed", time.Since(start)).Msg("unlock attempt failed")
		return view, err
	}

	l.logger.Info().Bool("private", view.Private).Dur("elapsed", time.Since(start)).Msg("unlock attempt")
	return view, nil
}

func (l *UnlockLoggingService) Public(ctx context.Context) (models.View, error) {
	return l.inner.Public(ctx)
}

func (l *UnlockLoggingService) Refresh(ctx context.Context) error {
	if err := l.inner.Refresh(ctx); err != nil {
		l.logger.Err(err).Str("func", "UnlockService.Refresh").Msg("bundle refresh failed")
		return err
	}

	return nil
}
