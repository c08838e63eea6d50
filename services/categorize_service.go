package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"promptdeck/categorizer"
	"promptdeck/config"
	"promptdeck/models"
)

// PromptStore 는 카테고리 태깅이 필요로 하는 프롬프트 저장소 연산이다.
// *repositories.PromptRepository 가 이를 구현한다.
type PromptStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Prompt, error)
	ListUncategorized(ctx context.Context, limit int) ([]models.Prompt, error)
	UpdateCategories(ctx context.Context, id primitive.ObjectID, categories []string, info models.CategorizationInfo) error
}

// CategorizeLogStore 는 게이트웨이 호출 로그 저장소이다.
type CategorizeLogStore interface {
	Insert(ctx context.Context, l models.CategorizeLog) (*mongo.InsertOneResult, error)
}

// TagGateway 는 멀티모달 추론 게이트웨이 호출 1회를 추상화한다.
type TagGateway interface {
	GenerateTags(ctx context.Context, req categorizer.Request) (string, error)
}

// QuotaLimiter 는 게이트웨이 호출 페이싱을 담당한다.
type QuotaLimiter interface {
	WaitAndReserve(ctx context.Context) (bool, error)
}

// CategorizedPublisher 는 태깅 완료 이벤트 발행을 추상화한다. nil 허용.
type CategorizedPublisher interface {
	PublishPromptCategorized(ctx context.Context, promptID primitive.ObjectID, categories []string, modelName string, fallback bool) error
}

// CategorizeError 는 핸들러가 HTTP 상태로 변환할 수 있는 서비스 오류이다.
type CategorizeError struct {
	StatusCode int
	ErrorCode  string
	Cause      error
}

func (e *CategorizeError) Error() string {
	if e == nil {
		return "categorize_failed"
	}
	return e.ErrorCode
}

func (e *CategorizeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newCategorizeError(status int, code string, cause error) *CategorizeError {
	return &CategorizeError{StatusCode: status, ErrorCode: code, Cause: cause}
}

// BatchReport 는 배치 실행 한 번의 집계 결과이다.
type BatchReport struct {
	Processed int      `json:"processed"`
	Total     int      `json:"total"`
	Errors    []string `json:"errors,omitempty"`
}

// CategorizeServiceDeps wires collaborators into the service.
type CategorizeServiceDeps struct {
	Prompts   PromptStore
	Logs      CategorizeLogStore
	Gateway   TagGateway
	Quota     QuotaLimiter
	Publisher CategorizedPublisher
}

// CategorizeService 는 단건/배치 카테고리 태깅 파이프라인의 오케스트레이터다.
//
// 게이트웨이 실패(네트워크, 타임아웃, 키 미설정)는 호출 실패로 보지 않고
// 폴백 태그로 강등한다. 태깅은 부가 기능이지 레코드 사용성의 의존성이 아니기
// 때문이다. 반대로 저장 실패는 계산 결과를 조용히 잃는 것이므로 반드시
// 호출자에게 전파한다.
type CategorizeService struct {
	prompts   PromptStore
	logs      CategorizeLogStore
	gateway   TagGateway
	quota     QuotaLimiter
	publisher CategorizedPublisher

	modelName      string
	gatewayTimeout time.Duration
	batchSize      int
}

func NewCategorizeService(deps CategorizeServiceDeps) *CategorizeService {
	cfg := config.GetConfig()
	return &CategorizeService{
		prompts:        deps.Prompts,
		logs:           deps.Logs,
		gateway:        deps.Gateway,
		quota:          deps.Quota,
		publisher:      deps.Publisher,
		modelName:      cfg.GeminiModel,
		gatewayTimeout: time.Duration(cfg.Categorize.EffectiveGatewayTimeoutSeconds()) * time.Second,
		batchSize:      cfg.Categorize.EffectiveBatchSize(),
	}
}

// DraftInput 은 아직 저장되지 않은 프롬프트 초안에 대한 태깅 입력이다.
type DraftInput struct {
	Title       string
	Description string
	Content     string
	ImageURLs   []string
}

// CategorizeDraft 는 명시적 페이로드에 대해 태그를 제안한다. 저장하지 않는다.
func (s *CategorizeService) CategorizeDraft(ctx context.Context, in DraftInput) ([]string, *CategorizeError) {
	req, err := categorizer.Compose(categorizer.Source{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Images:      in.ImageURLs,
	}, categorizer.ModeSingle)
	if err != nil {
		return nil, newCategorizeError(http.StatusBadRequest, "invalid_record", err)
	}

	tags, _, _ := s.runGateway(ctx, req)
	return tags, nil
}

// CategorizePrompt 는 저장된 프롬프트 한 건을 태깅하고 결과를 저장한다.
func (s *CategorizeService) CategorizePrompt(ctx context.Context, id primitive.ObjectID) ([]string, *CategorizeError) {
	p, err := s.prompts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, newCategorizeError(http.StatusNotFound, "not_found", err)
		}
		return nil, newCategorizeError(http.StatusInternalServerError, "store_failed", err)
	}

	return s.categorizeStored(ctx, p, categorizer.ModeSingle)
}

// CategorizeBatch 는 미분류 프롬프트를 한도만큼 선택하여 순차 태깅한다.
// 후보 한 건의 실패는 배치를 중단시키지 않고 Errors 항목으로 남는다.
func (s *CategorizeService) CategorizeBatch(ctx context.Context) (BatchReport, *CategorizeError) {
	candidates, err := s.prompts.ListUncategorized(ctx, s.batchSize)
	if err != nil {
		return BatchReport{}, newCategorizeError(http.StatusInternalServerError, "store_failed", err)
	}

	report := BatchReport{Total: len(candidates)}
	if len(candidates) == 0 {
		return report, nil
	}

	for i := range candidates {
		p := &candidates[i]

		if ctx.Err() != nil {
			// 취소 시 새 후보 호출을 멈춘다. 이미 저장된 결과는 되돌리지 않는다.
			report.Errors = append(report.Errors, fmt.Sprintf("batch stopped: %v", ctx.Err()))
			break
		}

		// 구성 실패 후보는 게이트웨이 호출이 없으므로 쿼터를 소모하지 않는다.
		req, err := composeFor(p, categorizer.ModeBatch)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("prompt %s: invalid_record", p.ID.Hex()))
			continue
		}

		if s.quota != nil {
			allowed, qerr := s.quota.WaitAndReserve(ctx)
			if qerr != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("batch stopped: %v", qerr))
				break
			}
			if !allowed {
				report.Errors = append(report.Errors, "daily gateway quota exhausted, remaining candidates skipped")
				break
			}
		}

		if _, cerr := s.categorizeComposed(ctx, p, req); cerr != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("prompt %s: %s", p.ID.Hex(), cerr.ErrorCode))
			continue
		}
		report.Processed++
	}

	return report, nil
}

// composeFor 는 저장된 프롬프트에 대한 게이트웨이 요청을 구성한다.
func composeFor(p *models.Prompt, mode categorizer.Mode) (categorizer.Request, error) {
	return categorizer.Compose(categorizer.Source{
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		Images:      p.ImageURLs,
	}, mode)
}

// categorizeStored 는 단건 태깅의 공통 경로다: 요청 구성 -> 게이트웨이 ->
// 정규화 -> 전체 교체 저장 -> 호출 로그/이벤트.
func (s *CategorizeService) categorizeStored(ctx context.Context, p *models.Prompt, mode categorizer.Mode) ([]string, *CategorizeError) {
	req, err := composeFor(p, mode)
	if err != nil {
		return nil, newCategorizeError(http.StatusBadRequest, "invalid_record", err)
	}

	return s.categorizeComposed(ctx, p, req)
}

// categorizeComposed 는 이미 구성된 요청으로 게이트웨이 호출 이후 단계를 수행한다.
func (s *CategorizeService) categorizeComposed(ctx context.Context, p *models.Prompt, req categorizer.Request) ([]string, *CategorizeError) {
	requestedAt := time.Now()
	tags, fallback, excerpt := s.runGateway(ctx, req)
	completedAt := time.Now()

	info := models.CategorizationInfo{
		ModelName:   s.modelName,
		Fallback:    fallback,
		GeneratedAt: completedAt,
	}
	if err := s.prompts.UpdateCategories(ctx, p.ID, tags, info); err != nil {
		return nil, newCategorizeError(http.StatusInternalServerError, "persistence_failed", err)
	}

	if s.logs != nil {
		_, _ = s.logs.Insert(ctx, models.CategorizeLog{
			PromptID:        p.ID,
			Model:           s.modelName,
			DurationMs:      completedAt.Sub(requestedAt).Milliseconds(),
			Success:         !fallback,
			Fallback:        fallback,
			ResponseExcerpt: excerpt,
			RequestedAt:     requestedAt,
			CompletedAt:     completedAt,
		})
	}

	if s.publisher != nil {
		if err := s.publisher.PublishPromptCategorized(ctx, p.ID, tags, s.modelName, fallback); err != nil {
			config.Logger.Warnf("failed to publish prompt.categorized for %s: %v", p.ID.Hex(), err)
		}
	}

	return tags, nil
}

// runGateway 는 게이트웨이를 타임아웃과 함께 호출하고 응답을 정규화한다.
// 모든 게이트웨이 오류는 폴백 태그로 강등된다.
func (s *CategorizeService) runGateway(ctx context.Context, req categorizer.Request) (tags []string, fallback bool, excerpt string) {
	gctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	raw, err := s.gateway.GenerateTags(gctx, req)
	if err != nil {
		if errors.Is(err, categorizer.ErrNotConfigured) {
			config.Logger.Warnf("inference gateway not configured, using fallback tag: %v", err)
		} else {
			config.Logger.Warnf("inference gateway call failed, using fallback tag: %v", err)
		}
		return []string{categorizer.FallbackTag}, true, ""
	}

	return categorizer.NormalizeTags(raw), false, truncateExcerpt(raw, 200)
}

// truncateExcerpt returns s truncated to max runes.
func truncateExcerpt(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
