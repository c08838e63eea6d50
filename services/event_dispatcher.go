package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"promptdeck/eventbus"
	"promptdeck/events"
	"promptdeck/models"
)

// EventDispatcher 는 프롬프트 도메인 이벤트 발행 서비스다.
type EventDispatcher struct {
	bus    eventbus.EventBus
	source string
}

// NewEventDispatcher 새로운 이벤트 디스패처 생성. source 는 발행 주체
// 식별자("api", "worker", "batch")다.
func NewEventDispatcher(bus eventbus.EventBus, source string) *EventDispatcher {
	return &EventDispatcher{
		bus:    bus,
		source: source,
	}
}

// PublishPromptCreated 프롬프트 등록 이벤트 발행
func (d *EventDispatcher) PublishPromptCreated(ctx context.Context, p *models.Prompt) error {
	e := events.PromptCreatedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.PromptCreated,
			Timestamp: time.Now(),
			Source:    d.source,
			Version:   "1.0",
		},
		PromptID: p.ID,
		AuthorID: p.AuthorID,
		Title:    p.Title,
	}
	evt, err := eventbus.NewJSONEvent("", e, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return d.bus.Publish(ctx, eventbus.TopicPromptEvents.Base(), evt)
}

// PublishPromptCategorized 카테고리 태깅 완료 이벤트 발행
func (d *EventDispatcher) PublishPromptCategorized(ctx context.Context, promptID primitive.ObjectID, categories []string, modelName string, fallback bool) error {
	e := events.PromptCategorizedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.PromptCategorized,
			Timestamp: time.Now(),
			Source:    d.source,
			Version:   "1.0",
		},
		PromptID:   promptID,
		Categories: categories,
		ModelName:  modelName,
		Fallback:   fallback,
	}
	evt, err := eventbus.NewJSONEvent("", e, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return d.bus.Publish(ctx, eventbus.TopicPromptEvents.Base(), evt)
}
