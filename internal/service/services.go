package service

import (
	"github.com/MKhiriev/money-tracker/internal/config"
	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/store"
)

type Services struct {
	AuthService    AuthService
	ExpenseService ExpenseService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of storages. The expense service is
// wrapped by the validation layer.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	expenseService := NewExpenseValidationService().Wrap(
		NewExpenseService(storages.ExpenseRepository, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ExpenseService: expenseService,
		AppInfoService: appInfoService,
	}, nil
}
