// Package system holds the system-health shapes shown on the
// management dashboards.
package system

import "time"

// ServiceStatus is one dependency's health as reported by the backend.
type ServiceStatus struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health is the backend's health report. It is displayed as-is; the
// console computes nothing beyond what the backend states.
type Health struct {
	Status      string          `json:"status"`
	Version     string          `json:"version"`
	UptimeSecs  int64           `json:"uptime_seconds"`
	Services    []ServiceStatus `json:"services"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Degraded reports whether any dependency is not healthy.
func (h Health) Degraded() bool {
	for _, svc := range h.Services {
		if svc.Status != "ok" && svc.Status != "healthy" {
			return true
		}
	}
	return false
}
