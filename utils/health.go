package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Pinger checks a single dependency.
type Pinger func(ctx context.Context) error

// HealthMonitor keeps the latest dependency snapshot for the health endpoint.
type HealthMonitor struct {
	mongo  Pinger
	redis  Pinger
	logger *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor builds a monitor over a Mongo client and an optional Redis client.
func NewHealthMonitor(mongoClient *mongo.Client, redisClient *redis.Client, logger *zap.Logger) *HealthMonitor {
	m := &HealthMonitor{
		mongo:  func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		logger: logger,
	}
	if redisClient != nil {
		m.redis = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	return m
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     m.mongo(ctx) == nil,
		CheckedAt: time.Now().UTC(),
	}
	if m.redis != nil {
		ok := m.redis(ctx) == nil
		status.Redis = &ok
	}
	if !status.Mongo {
		m.logger.Warn("health: mongo ping failed")
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start checks immediately, then every interval until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
