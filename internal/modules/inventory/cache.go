// README: Redis cache of booking -> vehicle lists.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"roadfit/internal/types"
)

const vehicleKeyPrefix = "inventory:booking:%s:vehicles"

// Cache keeps recently fetched vehicle lists so repeated evaluations of the
// same booking skip the upstream round trip. Misses are not errors.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(redis *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: redis, ttl: ttl}
}

func vehicleKey(bookingID types.ID) string {
	return fmt.Sprintf(vehicleKeyPrefix, string(bookingID))
}

// Get returns the cached vehicle list and whether it was present.
func (c *Cache) Get(ctx context.Context, bookingID types.ID) ([]Vehicle, bool, error) {
	val, err := c.redis.Get(ctx, vehicleKey(bookingID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var vehicles []Vehicle
	if err := json.Unmarshal([]byte(val), &vehicles); err != nil {
		// A corrupt entry reads as a miss; the fresh fetch will overwrite it.
		return nil, false, nil
	}
	return vehicles, true, nil
}

// Set stores the vehicle list with the configured TTL.
func (c *Cache) Set(ctx context.Context, bookingID types.ID, vehicles []Vehicle) error {
	data, err := json.Marshal(vehicles)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, vehicleKey(bookingID), data, c.ttl).Err()
}
