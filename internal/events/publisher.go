// Package events publishes project lifecycle events over Redis pub/sub
// so other services can react without polling.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const channelPrefix = "projects:events:" // Pub/Sub channel per project: projects:events:{code}

// Event types emitted by the lifecycle manager.
const (
	TypeProjectCreated   = "project.created"
	TypeProjectCompleted = "project.completed"
	TypeProjectDeleted   = "project.deleted"
)

// Event describes a single lifecycle transition.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ProjectCode string    `json:"project_code"`
	Actor       string    `json:"actor"`
	At          time.Time `json:"at"`
}

// Publisher writes events to Redis.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish sends the event on the project's channel. Callers treat this
// as best-effort; a publish failure never fails the lifecycle operation.
func (p *Publisher) Publish(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.rdb.Publish(ctx, channelPrefix+e.ProjectCode, data).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
