package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salon/backend/internal/domain"
	"salon/backend/internal/store"
)

const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

type Recorder interface {
	CacheLookup(outcome string)
}

// ServiceCache is a read-through cache in front of service lookups. Cache
// failures are logged and the lookup falls through to next.
type ServiceCache struct {
	next     store.ServiceReader
	kv       KV
	ttl      time.Duration
	log      *slog.Logger
	recorder Recorder
}

func NewServiceCache(next store.ServiceReader, kv KV, ttl time.Duration, log *slog.Logger, recorder Recorder) *ServiceCache {
	if log == nil {
		log = slog.Default()
	}
	return &ServiceCache{next: next, kv: kv, ttl: ttl, log: log, recorder: recorder}
}

func serviceKey(id uuid.UUID) string {
	return "salon:service:" + id.String()
}

func (c *ServiceCache) FindServiceByID(ctx context.Context, serviceID uuid.UUID) (domain.Service, error) {
	key := serviceKey(serviceID)

	b, err := c.kv.Get(ctx, key)
	switch {
	case err == nil:
		var svc domain.Service
		if err := json.Unmarshal(b, &svc); err == nil {
			c.record(OutcomeHit)
			return svc, nil
		}
		c.record(OutcomeError)
		c.log.WarnContext(ctx, "discarding undecodable cache entry", slog.String("key", key))
	case errors.Is(err, ErrMiss):
		c.record(OutcomeMiss)
	default:
		c.record(OutcomeError)
		c.log.WarnContext(ctx, "service cache read failed", slog.String("key", key), slog.String("err", err.Error()))
	}

	svc, err := c.next.FindServiceByID(ctx, serviceID)
	if err != nil {
		return domain.Service{}, err
	}

	if b, err := json.Marshal(svc); err == nil {
		if err := c.kv.Set(ctx, key, b, c.ttl); err != nil {
			c.log.WarnContext(ctx, "service cache write failed", slog.String("key", key), slog.String("err", err.Error()))
		}
	}
	return svc, nil
}

func (c *ServiceCache) Invalidate(ctx context.Context, serviceID uuid.UUID) error {
	return c.kv.Del(ctx, serviceKey(serviceID))
}

func (c *ServiceCache) record(outcome string) {
	if c.recorder != nil {
		c.recorder.CacheLookup(outcome)
	}
}
