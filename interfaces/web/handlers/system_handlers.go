package handlers

import (
	"net/http"

	"eduadmin/application"
)

// SystemHandlers handles system status HTTP endpoints.
type SystemHandlers struct {
	statusService *application.SystemStatusService
}

// NewSystemHandlers creates a new system handlers instance.
func NewSystemHandlers(statusService *application.SystemStatusService) *SystemHandlers {
	return &SystemHandlers{statusService: statusService}
}

// Health proxies the backend health dashboard.
func (h *SystemHandlers) Health(w http.ResponseWriter, r *http.Request) {
	health, err := h.statusService.Status(r.Context())
	if err != nil {
		RenderError(w, err)
		return
	}

	status := http.StatusOK
	if health.Degraded() {
		status = http.StatusServiceUnavailable
	}
	RenderJSON(w, status, health)
}
