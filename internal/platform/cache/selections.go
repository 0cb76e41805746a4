// Package cache keeps the last confirmed category selection of suppliers in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/go-redis/redis/v8"
)

const keyPrefix = "sync:selection:"

// Connect returns redis client connected to provided address.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("can't connect to redis: %w", err)
	}

	return client, nil
}

// Selections stores category selections as JSON values under sync:selection:<supplierID> keys.
type Selections struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewSelections returns new Selections. Zero ttl keeps selections forever.
func NewSelections(client redis.Cmdable, ttl time.Duration) *Selections {
	return &Selections{
		client: client,
		ttl:    ttl,
	}
}

// Save overwrites supplier's last selection.
func (s *Selections) Save(ctx context.Context, supplierID string, selection models.Selection) error {
	value, err := json.Marshal(selection)
	if err != nil {
		return fmt.Errorf("can't encode selection: %w", err)
	}

	if err := s.client.Set(ctx, key(supplierID), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("can't save selection: %w", err)
	}

	return nil
}

// Load returns supplier's last selection or platform.ErrNoSelection.
func (s *Selections) Load(ctx context.Context, supplierID string) (models.Selection, error) {
	value, err := s.client.Get(ctx, key(supplierID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Selection{}, platform.ErrNoSelection
	}
	if err != nil {
		return models.Selection{}, fmt.Errorf("can't load selection: %w", err)
	}

	var selection models.Selection
	if err := json.Unmarshal(value, &selection); err != nil {
		return models.Selection{}, fmt.Errorf("can't decode selection: %w", err)
	}

	return selection, nil
}

func key(supplierID string) string {
	return keyPrefix + supplierID
}
