package application

import (
	"context"

	"eduadmin/domain/system"
	"eduadmin/logging"
)

// HealthAPI fetches the backend's health report.
type HealthAPI interface {
	Health(ctx context.Context) (*system.Health, error)
}

// SystemStatusService backs the system-health dashboard.
type SystemStatusService struct {
	api    HealthAPI
	logger *logging.Logger
}

// NewSystemStatusService wires the dashboard service.
func NewSystemStatusService(api HealthAPI, logger *logging.Logger) *SystemStatusService {
	return &SystemStatusService{
		api:    api,
		logger: logger.WithComponent("system_status"),
	}
}

// Status returns the backend health report.
func (s *SystemStatusService) Status(ctx context.Context) (*system.Health, error) {
	report, err := s.api.Health(ctx)
	if err != nil {
		s.logger.Error("health fetch failed", "error", err)
		return nil, err
	}
	return report, nil
}
