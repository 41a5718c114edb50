package upstream

import (
	"context"
	"net/http"
)

// HealthStatus is the backend health-check result
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
}

// HealthClient talks to the backend health-check endpoint
type HealthClient struct {
	c *Client
}

// Check fetches the backend health status. Health is never served from the
// GET cache; a stale "healthy" would defeat the point.
func (h *HealthClient) Check(ctx context.Context) (*HealthStatus, error) {
	body, err := h.c.roundTrip(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[HealthStatus](body)
}
