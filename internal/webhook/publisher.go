package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
)

// ReportEvent is the payload delivered when a hazard report is created.
type ReportEvent struct {
	ReportID       uuid.UUID `json:"report_id"`
	ReporterUserID uuid.UUID `json:"reporter_user_id"`
	Title          string    `json:"title"`
	GuName         string    `json:"gu_name"`
	Timestamp      time.Time `json:"timestamp"`
}

// WebhookPublisher is the contract for enqueueing report events.
type WebhookPublisher interface {
	Publish(ctx context.Context, event ReportEvent) error
}

// RedisWebhookPublisher enqueues events onto a Redis list.
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher creates a new RedisWebhookPublisher.
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the left side of the queue list.
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
