package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const optionsCacheKey = "appointment_options"

// Cache is the subset of *redis.Client the option cache needs.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// cachedOptionRepository serves the option catalog from redis for ttl.
// Options are reference data edited outside this service, so expiry is the
// only invalidation. Cache errors fall through to the store.
type cachedOptionRepository struct {
	next  AppointmentOptionRepository
	cache Cache
	ttl   time.Duration
	log   logrus.FieldLogger
}

func NewCachedAppointmentOptionRepository(next AppointmentOptionRepository, cache Cache, ttl time.Duration, log logrus.FieldLogger) AppointmentOptionRepository {
	return &cachedOptionRepository{next: next, cache: cache, ttl: ttl, log: log}
}

func (r *cachedOptionRepository) List(ctx context.Context) ([]models.AppointmentOption, error) {
	raw, err := r.cache.Get(ctx, optionsCacheKey).Bytes()
	if err == nil {
		var opts []models.AppointmentOption
		if err := json.Unmarshal(raw, &opts); err == nil {
			return nonNil(opts), nil
		}
		r.log.WithField("key", optionsCacheKey).Warn("discarding undecodable cache entry")
	} else if !errors.Is(err, redis.Nil) {
		r.log.WithError(err).Warn("option cache read failed")
	}

	opts, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(opts); err == nil {
		if err := r.cache.Set(ctx, optionsCacheKey, payload, r.ttl).Err(); err != nil {
			r.log.WithError(err).Warn("option cache write failed")
		}
	}
	return opts, nil
}

func (r *cachedOptionRepository) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	return r.next.ListSpecialties(ctx)
}
