// Package v1 exposes the HTTP surface of the scheduling service: the parse
// endpoint in its legacy and versioned locations, the service description,
// the health probe, and the metrics snapshot.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/PBLBot/scheduling-api/internal/profile"
	"github.com/PBLBot/scheduling-api/server/internal/observability"
	"github.com/PBLBot/scheduling-api/server/service/resolve"
)

type APIV1Service struct {
	Profile  *profile.Profile
	Resolver resolve.Resolver
	Metrics  *observability.Metrics
}

func NewAPIV1Service(profile *profile.Profile, resolver resolve.Resolver, metrics *observability.Metrics) *APIV1Service {
	return &APIV1Service{
		Profile:  profile,
		Resolver: resolver,
		Metrics:  metrics,
	}
}

// Register wires the service routes onto the given echo instance. The bare
// /parse route predates the /api/v1 prefix and is kept for older clients.
func (s *APIV1Service) Register(echoServer *echo.Echo) {
	echoServer.GET("/", s.GetServiceInfo)
	echoServer.GET("/healthz", s.GetHealthz)
	echoServer.GET("/parse", s.ParseText)
	echoServer.GET("/api/v1/parse", s.ParseText)
	echoServer.GET("/api/v1/metrics", s.GetMetricsOverview)
}
