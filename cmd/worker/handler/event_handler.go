package handler

import (
	"context"

	"promptdeck/config"
	"promptdeck/events"
	"promptdeck/quota"
	"promptdeck/services"
)

type EventHandlers struct {
	categorizeSvc   *services.CategorizeService
	categorizeQuota *quota.CategorizeQuotaLimiter
}

func NewEventHandlers(categorizeSvc *services.CategorizeService, categorizeQuota *quota.CategorizeQuotaLimiter) *EventHandlers {
	return &EventHandlers{
		categorizeSvc:   categorizeSvc,
		categorizeQuota: categorizeQuota,
	}
}

// HandlePromptCreated 는 새 프롬프트에 대해 카테고리 태깅을 수행한다.
// 일일 한도가 소진된 날에는 건너뛰고 커밋한다(배치가 다음 날 수거한다).
func (h *EventHandlers) HandlePromptCreated(ctx context.Context, event *events.PromptCreatedEvent) error {
	allowed, err := h.categorizeQuota.WaitAndReserve(ctx)
	if err != nil {
		config.Logger.Errorf("failed to apply categorize quota for %s: %v", event.PromptID.Hex(), err)
		return err
	}
	if !allowed {
		config.Logger.Warnf("categorize daily quota exceeded, skip categorization for %s", event.PromptID.Hex())
		return nil
	}

	config.Logger.Infof("handling PromptCreated event for prompt: %s", event.PromptID.Hex())

	tags, cerr := h.categorizeSvc.CategorizePrompt(ctx, event.PromptID)
	if cerr != nil {
		config.Logger.Errorf("failed to categorize prompt %s: %v", event.PromptID.Hex(), cerr.Unwrap())
		return cerr
	}

	config.Logger.Infof("prompt categorization completed for %s: %v", event.PromptID.Hex(), tags)
	return nil
}
