package apiclient

import (
	"context"

	"eduadmin/domain/system"
)

// SystemAPI fetches the backend's health report for the dashboards.
type SystemAPI struct {
	client *Client
}

// NewSystemAPI wraps the shared client for system endpoints.
func NewSystemAPI(client *Client) *SystemAPI {
	return &SystemAPI{client: client}
}

// Health implements application.HealthAPI.
func (a *SystemAPI) Health(ctx context.Context) (*system.Health, error) {
	var report system.Health
	if err := a.client.get(ctx, "/system/health", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
