// Sueño y Hábitos API
//
// REST API for a sleep quality study dashboard.
//
//	@title			Sueño y Hábitos API
//	@version		1.0
//	@description	Track study subjects, nightly sleep records with derived duration and efficiency, sleep stages, lifestyle factors and cohort reports.
//
//	@BasePath	/api
//
//	@tag.name			subjects
//	@tag.description	Study subject management endpoints
//
//	@tag.name			records
//	@tag.description	Nightly sleep record endpoints
//
//	@tag.name			sleep-stages
//	@tag.description	Per-record sleep stage breakdowns
//
//	@tag.name			lifestyle-factors
//	@tag.description	Per-record lifestyle descriptors
//
//	@tag.name			tags
//	@tag.description	Subject tagging endpoints
//
//	@tag.name			reports
//	@tag.description	Aggregated cohort reports and exports
//
//	@tag.name			uploads
//	@tag.description	File attachment endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/dvaldes/sueno-habitos/internal/api"
	"github.com/dvaldes/sueno-habitos/internal/api/handler"
	"github.com/dvaldes/sueno-habitos/internal/config"
	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/llm"
	"github.com/dvaldes/sueno-habitos/internal/repository"
	"github.com/dvaldes/sueno-habitos/internal/seed"
	"github.com/dvaldes/sueno-habitos/internal/service"
	"github.com/dvaldes/sueno-habitos/internal/storage"
	"github.com/dvaldes/sueno-habitos/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.Subject{},
		&domain.Tag{},
		&domain.SleepRecord{},
		&domain.SleepStage{},
		&domain.LifestyleFactors{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize tracing (no-op when OTLP endpoint is unset)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sueno-habitos-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Initialize repositories
	subjectRepo := repository.NewSubjectRepository(db)
	recordRepo := repository.NewSleepRecordRepository(db)
	stageRepo := repository.NewSleepStageRepository(db)
	lifestyleRepo := repository.NewLifestyleRepository(db)
	tagRepo := repository.NewTagRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	subjectService := service.NewSubjectService(subjectRepo, tagRepo)
	recordService := service.NewSleepRecordService(recordRepo, subjectRepo)
	stageService := service.NewSleepStageService(stageRepo, recordRepo)
	lifestyleService := service.NewLifestyleService(lifestyleRepo, recordRepo)
	tagService := service.NewTagService(tagRepo)
	reportService := service.NewReportService(reportRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIReportInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(reportService, openaiClient)

	// Initialize storage client (no-op when Supabase is unset)
	storageClient := storage.NewClient(storage.Config{
		BaseURL: cfg.SupabaseURL,
		APIKey:  cfg.StorageKey(),
		Bucket:  cfg.SupabaseBucket,
	})

	// Initialize handlers
	subjectHandler := handler.NewSubjectHandler(subjectService)
	recordHandler := handler.NewSleepRecordHandler(recordService)
	stageHandler := handler.NewSleepStageHandler(stageService)
	lifestyleHandler := handler.NewLifestyleHandler(lifestyleService)
	tagHandler := handler.NewTagHandler(tagService)
	reportHandler := handler.NewReportHandler(reportService, insightsService)
	uploadHandler := handler.NewUploadHandler(storageClient, recordService)

	// Setup router
	router := api.NewRouter(
		subjectHandler,
		recordHandler,
		stageHandler,
		lifestyleHandler,
		tagHandler,
		reportHandler,
		uploadHandler,
	)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
