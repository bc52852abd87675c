package handler

import (
	"github.com/MKhiriev/money-tracker/internal/config"
	"github.com/MKhiriev/money-tracker/internal/handler/http"
	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
