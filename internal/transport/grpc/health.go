package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"salon/backend/internal/api/salonv1"
)

type ReadyCheck func(ctx context.Context) error

// WatchReadiness runs every check each interval and reports the salon
// service as SERVING only while all of them pass. It returns when ctx is done.
func WatchReadiness(ctx context.Context, hs *health.Server, interval time.Duration, checks map[string]ReadyCheck, log *slog.Logger) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	log = log.With(slog.String("component", "grpc.health"))

	probe := func() {
		st := healthpb.HealthCheckResponse_SERVING
		for name, check := range checks {
			cctx, cancel := context.WithTimeout(ctx, interval)
			err := check(cctx)
			cancel()
			if err != nil {
				log.Warn("readiness check failed", slog.String("check", name), slog.Any("err", err))
				st = healthpb.HealthCheckResponse_NOT_SERVING
			}
		}
		hs.SetServingStatus(salonv1.ServiceName, st)
		hs.SetServingStatus("", st)
	}

	probe()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}
