package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/infrastructure/metrics"
)

const settingsKey = "settings"

// SettingsCache implements usecase.SettingsCache using Redis.
type SettingsCache struct {
	client  *redis.Client
	metrics *metrics.Metrics
	prefix  string
}

// NewSettingsCache creates a new SettingsCache.
func NewSettingsCache(client *redis.Client) *SettingsCache {
	return &SettingsCache{
		client: client,
		prefix: "interestledger:cache:",
	}
}

// WithMetrics records Redis operation and error counts on m.
func (c *SettingsCache) WithMetrics(m *metrics.Metrics) *SettingsCache {
	c.metrics = m
	return c
}

func (c *SettingsCache) observe(operation string, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.RedisOperations.WithLabelValues(operation).Inc()
	if err != nil {
		c.metrics.RedisErrors.WithLabelValues(operation).Inc()
	}
}

type settingsRecord struct {
	PartyName           string          `json:"party_name"`
	Currency            string          `json:"currency"`
	FirmName            string          `json:"firm_name"`
	DefaultInterestRate decimal.Decimal `json:"default_interest_rate"`
	DefaultGracePeriod  int             `json:"default_grace_period"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Get returns the cached settings, or (nil, nil) on a miss.
func (c *SettingsCache) Get(ctx context.Context) (*domain.Settings, error) {
	data, err := c.client.Get(ctx, c.prefix+settingsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe("get", nil)
		return nil, nil
	}
	c.observe("get", err)
	if err != nil {
		return nil, err
	}

	var rec settingsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode cached settings: %w", err)
	}

	return &domain.Settings{
		PartyName:           rec.PartyName,
		Currency:            rec.Currency,
		FirmName:            rec.FirmName,
		DefaultInterestRate: rec.DefaultInterestRate,
		DefaultGracePeriod:  rec.DefaultGracePeriod,
		UpdatedAt:           rec.UpdatedAt,
	}, nil
}

// Set stores settings with TTL.
func (c *SettingsCache) Set(ctx context.Context, settings *domain.Settings, ttl time.Duration) error {
	data, err := json.Marshal(settingsRecord{
		PartyName:           settings.PartyName,
		Currency:            settings.Currency,
		FirmName:            settings.FirmName,
		DefaultInterestRate: settings.DefaultInterestRate,
		DefaultGracePeriod:  settings.DefaultGracePeriod,
		UpdatedAt:           settings.UpdatedAt,
	})
	if err != nil {
		return err
	}

	err = c.client.Set(ctx, c.prefix+settingsKey, data, ttl).Err()
	c.observe("set", err)

	return err
}

// Delete removes the cached settings.
func (c *SettingsCache) Delete(ctx context.Context) error {
	err := c.client.Del(ctx, c.prefix+settingsKey).Err()
	c.observe("delete", err)

	return err
}
