package events

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType 이벤트 타입을 정의하는 열거형
type EventType string

const (
	// 프롬프트 관련 이벤트
	PromptCreated     EventType = "prompt.created"
	PromptCategorized EventType = "prompt.categorized"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "api", "worker", "batch" 등
	Version   string    `json:"version"`
}

// GetType 이벤트 타입을 반환
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// PromptCreatedEvent 새 프롬프트가 등록되었을 때 발행되는 이벤트.
// Worker 가 이 이벤트를 받아 카테고리 태깅을 수행한다.
type PromptCreatedEvent struct {
	BaseEvent
	PromptID primitive.ObjectID `json:"prompt_id"`
	AuthorID string             `json:"author_id"`
	Title    string             `json:"title"`
}

// PromptCategorizedEvent 카테고리 태깅이 완료되었을 때 발행되는 이벤트
type PromptCategorizedEvent struct {
	BaseEvent
	PromptID   primitive.ObjectID `json:"prompt_id"`
	Categories []string           `json:"categories"`
	ModelName  string             `json:"model_name"`
	Fallback   bool               `json:"fallback"`
}
