package dto

import (
	"time"

	"promptdeck/models"
)

// PromptDTO exposes the fields API consumers need.
// ID is a hex string to keep transport simple.
type PromptDTO struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	ImageURLs   []string  `json:"image_urls"`
	Categories  []string  `json:"categories"`
	Fallback    bool      `json:"fallback"`
	ModelName   string    `json:"model_name,omitempty"`
}

// NewPromptDTO 는 models.Prompt 를 전송용 DTO 로 변환한다.
func NewPromptDTO(p models.Prompt) PromptDTO {
	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}

	return PromptDTO{
		ID:          p.ID.Hex(),
		CreatedAt:   p.CreatedAt,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		ImageURLs:   imageURLs,
		Categories:  categories,
		Fallback:    p.Categorization.Fallback,
		ModelName:   p.Categorization.ModelName,
	}
}

// CreatePromptRequestDTO 는 프롬프트 등록 요청 본문이다.
type CreatePromptRequestDTO struct {
	Title       string   `json:"title" example:"Moonlit Forest"`
	Description string   `json:"description" example:"A serene night scene"`
	Content     string   `json:"content" example:"a moonlit forest with fireflies, digital painting"`
	ImageURLs   []string `json:"image_urls"`
}

// PaginationPromptDTO 는 프롬프트 목록 응답이다.
type PaginationPromptDTO struct {
	Items    []PromptDTO `json:"items"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int64       `json:"total"`
}
