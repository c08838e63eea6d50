package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"promptdeck/cmd/api/auth"
	"promptdeck/cmd/api/router"
	"promptdeck/config"
	"promptdeck/db"
	_ "promptdeck/docs" // swag will generate this package
	"promptdeck/eventbus"
	"promptdeck/services"
)

// @title           PromptDeck API
// @version         1.0
// @description     API for registering and auto-categorizing prompt records
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	config.InitApp()
	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	// 이벤트 버스는 선택 구성이다. 브로커가 없으면 발행 없이 동작한다.
	var dispatcher *services.EventDispatcher
	if brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); brokers != "" {
		bus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			log.Fatal(err)
		}
		defer bus.Close()
		dispatcher = services.NewEventDispatcher(bus, "api")
	} else {
		config.Logger.Warn("KAFKA_BOOTSTRAP_SERVERS not set, running without event publishing")
	}

	r := router.New(jwtManager, dispatcher)

	if err := r.Run(":8080"); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
