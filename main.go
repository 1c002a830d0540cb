// @title IELTS Prep Backend API
// @version 1.0
// @description Backend service for the IELTS exam-preparation platform.

// @host localhost:8080
// @BasePath /api

package main

import (
	"ielts_prep_backend/internal/app"
	"ielts_prep_backend/internal/config"
	"ielts_prep_backend/pkg/configwatcher"
	"ielts_prep_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
