package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"promptdeck/config"
	"promptdeck/models"
	"promptdeck/repositories"
)

// PromptService 는 프롬프트 등록/조회를 담당한다.
type PromptService struct {
	prompts    *repositories.PromptRepository
	dispatcher *EventDispatcher
}

// NewPromptService 는 프롬프트 서비스를 생성한다. dispatcher 는 nil 일 수 있다
// (이벤트 버스 없이 동작하는 구성).
func NewPromptService(prompts *repositories.PromptRepository, dispatcher *EventDispatcher) *PromptService {
	return &PromptService{
		prompts:    prompts,
		dispatcher: dispatcher,
	}
}

// CreatePromptInput 은 프롬프트 등록 입력이다.
type CreatePromptInput struct {
	AuthorID    string
	Title       string
	Description string
	Content     string
	ImageURLs   []string
}

// Create 는 새 프롬프트를 미분류 상태로 저장하고 prompt.created 이벤트를
// 발행한다. 이벤트 발행 실패는 경고로만 남긴다.
func (s *PromptService) Create(ctx context.Context, in CreatePromptInput) (*models.Prompt, error) {
	if in.Title == "" && in.Content == "" && len(in.ImageURLs) == 0 {
		return nil, fmt.Errorf("prompt needs at least one of title, content or images")
	}

	p := &models.Prompt{
		AuthorID:    in.AuthorID,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		ImageURLs:   in.ImageURLs,
	}

	saved, err := s.prompts.Insert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to insert prompt: %w", err)
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.PublishPromptCreated(ctx, saved); err != nil {
			config.Logger.Warnf("failed to publish prompt.created for %s: %v", saved.ID.Hex(), err)
		}
	}

	return saved, nil
}

// GetByID 는 프롬프트 한 건을 조회한다.
func (s *PromptService) GetByID(ctx context.Context, idStr string) (*models.Prompt, error) {
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid prompt id: %w", err)
	}
	return s.prompts.GetByID(ctx, id)
}

// ListPromptsInput 은 목록 조회 입력이다.
type ListPromptsInput struct {
	Page     int
	PageSize int
	Category string
	AuthorID string
}

// ListPromptsOutput 은 목록 조회 결과다.
type ListPromptsOutput struct {
	Items    []models.Prompt `json:"items"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int64           `json:"total"`
}

// List 는 프롬프트 목록을 최신순으로 페이지네이션하여 반환한다.
func (s *PromptService) List(ctx context.Context, in ListPromptsInput) (ListPromptsOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PageSize < 1 || in.PageSize > 100 {
		in.PageSize = 20
	}

	items, total, err := s.prompts.List(ctx, repositories.ListInput{
		Page:     in.Page,
		PageSize: in.PageSize,
		Category: in.Category,
		AuthorID: in.AuthorID,
	})
	if err != nil {
		return ListPromptsOutput{}, err
	}
	if items == nil {
		items = []models.Prompt{}
	}

	return ListPromptsOutput{
		Items:    items,
		Page:     in.Page,
		PageSize: in.PageSize,
		Total:    total,
	}, nil
}
