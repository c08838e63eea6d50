package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"promptdeck/categorizer"
	"promptdeck/config"
	"promptdeck/db"
	"promptdeck/eventbus"
	"promptdeck/quota"
	"promptdeck/repositories"
	"promptdeck/services"
)

// 미분류 프롬프트를 한도만큼 수거해 순차 태깅하는 일회성 배치.
// 크론 등 외부 스케줄러가 주기 실행을 담당한다.
func main() {
	config.InitApp()
	cfg := config.GetConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// SIGINT/SIGTERM 수신 시 새 후보 처리를 멈춘다.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		config.Logger.Warn("received shutdown signal, stopping batch after current candidate...")
		cancel()
	}()

	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	// 이벤트 버스는 선택 구성이다.
	var dispatcher *services.EventDispatcher
	if brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); brokers != "" {
		bus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			config.Logger.Errorf("failed to create event bus: %v", err)
			os.Exit(1)
		}
		defer bus.Close()
		dispatcher = services.NewEventDispatcher(bus, "batch")
	} else {
		config.Logger.Warn("KAFKA_BOOTSTRAP_SERVERS not set, running without event publishing")
	}

	promptRepo := repositories.NewPromptRepository(db.Database())
	logRepo := repositories.NewCategorizeLogRepository(db.Database())
	deps := services.CategorizeServiceDeps{
		Prompts: promptRepo,
		Logs:    logRepo,
		Gateway: categorizer.NewGateway(cfg.GeminiModel),
		Quota:   quota.NewCategorizeQuotaLimiterFromConfig(cfg),
	}
	// nil 포인터를 인터페이스에 넣지 않는다.
	if dispatcher != nil {
		deps.Publisher = dispatcher
	}
	categorizeSvc := services.NewCategorizeService(deps)

	report, cerr := categorizeSvc.CategorizeBatch(ctx)
	if cerr != nil {
		config.Logger.Errorf("batch categorization failed: %v", cerr.Unwrap())
		os.Exit(1)
	}

	config.InfoWithFields("batch categorization finished", config.Fields{
		"processed": report.Processed,
		"total":     report.Total,
		"errors":    len(report.Errors),
	})
	for _, e := range report.Errors {
		config.Logger.Warnf("batch item error: %s", e)
	}
}
