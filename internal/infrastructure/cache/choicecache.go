package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"liman/internal/domain/subscriptions"
	"liman/internal/shared/logger"
)

const choicesKeyPrefix = "autoapply:choices:"

// RedisChoiceCache caches derived auto-apply choice lists per customer
// agreement as JSON with a fixed TTL.
type RedisChoiceCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisChoiceCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisChoiceCache {
	return &RedisChoiceCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisChoiceCache) key(agreementUUID uuid.UUID) string {
	return choicesKeyPrefix + agreementUUID.String()
}

// GetChoices returns the cached choice list for an agreement, or nil on miss.
func (c *RedisChoiceCache) GetChoices(ctx context.Context, agreementUUID uuid.UUID) (*subscriptions.ChoiceList, error) {
	data, err := c.client.Get(ctx, c.key(agreementUUID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get choices from cache: %w", err)
	}

	var list subscriptions.ChoiceList
	if err := json.Unmarshal(data, &list); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.logger.Warnw("dropping corrupt choices cache entry",
			"error", err, "agreement_uuid", agreementUUID)
		c.client.Del(ctx, c.key(agreementUUID))
		return nil, nil
	}

	return &list, nil
}

// SetChoices stores the choice list for an agreement.
func (c *RedisChoiceCache) SetChoices(ctx context.Context, agreementUUID uuid.UUID, list subscriptions.ChoiceList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal choices: %w", err)
	}

	if err := c.client.Set(ctx, c.key(agreementUUID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache choices: %w", err)
	}

	return nil
}

// InvalidateChoices drops the cached choice list for an agreement.
func (c *RedisChoiceCache) InvalidateChoices(ctx context.Context, agreementUUID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(agreementUUID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate choices cache: %w", err)
	}
	return nil
}
