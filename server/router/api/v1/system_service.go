package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PBLBot/scheduling-api/server/internal/observability"
)

// ServiceInfoResponse describes the running service.
type ServiceInfoResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Mode      string            `json:"mode"`
	Endpoints map[string]string `json:"endpoints"`
}

// MetricsOverviewResponse is the metrics snapshot plus derived rates.
type MetricsOverviewResponse struct {
	*observability.MetricsSnapshot
	SuccessRate float64 `json:"success_rate"`
}

// GetServiceInfo returns the static service description.
// GET /
func (s *APIV1Service) GetServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, ServiceInfoResponse{
		Name:    "scheduling-api",
		Version: s.Profile.Version,
		Mode:    s.Profile.Mode,
		Endpoints: map[string]string{
			"parse":   "/parse?text=<phrase>",
			"healthz": "/healthz",
			"metrics": "/api/v1/metrics",
		},
	})
}

// GetHealthz reports service liveness.
// GET /healthz
func (s *APIV1Service) GetHealthz(c echo.Context) error {
	return c.String(http.StatusOK, "Service ready.")
}

// GetMetricsOverview returns the in-process metrics snapshot.
// GET /api/v1/metrics
func (s *APIV1Service) GetMetricsOverview(c echo.Context) error {
	snapshot := s.Metrics.Snapshot()
	return c.JSON(http.StatusOK, MetricsOverviewResponse{
		MetricsSnapshot: snapshot,
		SuccessRate:     snapshot.SuccessRate(),
	})
}
