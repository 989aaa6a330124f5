package main

import (
	"log"

	"github.com/joho/godotenv"

	"scenery/app"
	"scenery/engine"
	"scenery/internal"
	"scenery/internal/config"
	"scenery/ui"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	eng := engine.New(cfg.Report.BaseColor)
	service := app.NewReportService(eng, cfg.Report.MaxCategories, logger)

	server := ui.NewServer(cfg, service, logger)
	if err := server.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
