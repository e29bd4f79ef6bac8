package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const availabilityTTL = 2 * time.Minute

// AvailabilityCache guarda os slots calculados por stylist+dia no Redis.
// TTL curto: mutações invalidam, mas o TTL segura qualquer janela perdida.
type AvailabilityCache struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewAvailabilityCache(rdb *redis.Client, log zerolog.Logger) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, log: log}
}

func key(stylistID string, day time.Time, slotMin int) string {
	return fmt.Sprintf("availability:%s:%s:%d", stylistID, day.Format("2006-01-02"), slotMin)
}

func dayPattern(stylistID string, day time.Time) string {
	return fmt.Sprintf("availability:%s:%s:*", stylistID, day.Format("2006-01-02"))
}

// Get devolve (slots, true) no hit; (nil, false) em miss ou erro.
// Erro de cache nunca propaga, só loga.
func (c *AvailabilityCache) Get(ctx context.Context, stylistID string, day time.Time, slotMin int) ([]string, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(stylistID, day, slotMin)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("availability cache get failed")
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, stylistID string, day time.Time, slotMin int, slots []string) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(stylistID, day, slotMin), raw, availabilityTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache set failed")
	}
}

// Invalidate remove as entradas do dia afetado por um booking/cancelamento.
func (c *AvailabilityCache) Invalidate(ctx context.Context, stylistID string, day time.Time) {
	if c == nil || c.rdb == nil {
		return
	}

	keys, err := c.rdb.Keys(ctx, dayPattern(stylistID, day)).Result()
	if err != nil {
		c.log.Warn().Err(err).Msg("availability cache invalidate failed")
		return
	}

	if len(keys) > 0 {
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			c.log.Warn().Err(err).Msg("availability cache invalidate failed")
		}
	}
}
