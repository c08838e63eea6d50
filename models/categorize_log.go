package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategorizeLog records a single inference-gateway call made by the
// categorizer, successful or not.
// Collection: categorize_logs
type CategorizeLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PromptID        primitive.ObjectID `bson:"prompt_id" json:"prompt_id"`
	Model           string             `bson:"model" json:"model"`
	DurationMs      int64              `bson:"duration_ms" json:"duration_ms"`
	Success         bool               `bson:"success" json:"success"`
	Fallback        bool               `bson:"fallback" json:"fallback"`
	ResponseExcerpt string             `bson:"response_excerpt" json:"response_excerpt"`
	RequestedAt     time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt     time.Time          `bson:"completed_at" json:"completed_at"`
}
