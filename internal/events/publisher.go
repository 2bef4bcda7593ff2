package events

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks github.com/shenikar/geoprice/internal/events Publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geoprice/internal/models"
)

const (
	areaEventsQueueKey = "land_area_events"
)

// Kind - тип события об участках
type Kind string

const (
	// KindCatalogGenerated - каталог сгенерирован заново
	KindCatalogGenerated Kind = "catalog_generated"
	// KindAreaAdded - добавлен участок по адресу
	KindAreaAdded Kind = "area_added"
)

// AreaEvent - событие для доставки во внешний вебхук
type AreaEvent struct {
	Kind      Kind               `json:"kind"`
	Count     int                `json:"count"`
	Areas     []*models.LandArea `json:"areas,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// NewAreaEvent собирает событие с текущим временем
func NewAreaEvent(kind Kind, areas ...*models.LandArea) AreaEvent {
	return AreaEvent{
		Kind:      kind,
		Count:     len(areas),
		Areas:     areas,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event AreaEvent) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть списка, воркер забирает справа
func (p *RedisPublisher) Publish(ctx context.Context, event AreaEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal area event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, areaEventsQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish area event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда Redis не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, AreaEvent) error { return nil }
