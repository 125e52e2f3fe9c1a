package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"dealflow/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	activeBuyersKey = "dealflow:buyers:active"
	defaultTTL      = 5 * time.Minute
)

// ActiveBuyers хранит снимок активных покупателей в Redis.
// Сбрасывается сервисом покупателей при любом изменении реестра.
type ActiveBuyers struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

func NewActiveBuyers(client redis.Cmdable) *ActiveBuyers {
	return &ActiveBuyers{
		client: client,
		key:    activeBuyersKey,
		ttl:    defaultTTL,
	}
}

func (c *ActiveBuyers) WithTTL(ttl time.Duration) *ActiveBuyers {
	if ttl > 0 {
		c.ttl = ttl
	}
	return c
}

// WithKeyPrefix разделяет ключи нескольких окружений в одной базе.
func (c *ActiveBuyers) WithKeyPrefix(prefix string) *ActiveBuyers {
	if prefix != "" {
		c.key = prefix + ":" + activeBuyersKey
	}
	return c
}

// Get возвращает снимок; ok == false, если его нет.
func (c *ActiveBuyers) Get(ctx context.Context) ([]entity.Buyer, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var buyers []entity.Buyer
	if err := json.Unmarshal(raw, &buyers); err != nil {
		return nil, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return buyers, true, nil
}

func (c *ActiveBuyers) Set(ctx context.Context, buyers []entity.Buyer) error {
	if buyers == nil {
		buyers = []entity.Buyer{}
	}

	raw, err := json.Marshal(buyers)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (c *ActiveBuyers) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}
