package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/dvaldes/sueno-habitos/docs"
	"github.com/dvaldes/sueno-habitos/internal/api/handler"
	"github.com/dvaldes/sueno-habitos/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	subjectHandler   *handler.SubjectHandler
	recordHandler    *handler.SleepRecordHandler
	stageHandler     *handler.SleepStageHandler
	lifestyleHandler *handler.LifestyleHandler
	tagHandler       *handler.TagHandler
	reportHandler    *handler.ReportHandler
	uploadHandler    *handler.UploadHandler
}

func NewRouter(
	subjectHandler *handler.SubjectHandler,
	recordHandler *handler.SleepRecordHandler,
	stageHandler *handler.SleepStageHandler,
	lifestyleHandler *handler.LifestyleHandler,
	tagHandler *handler.TagHandler,
	reportHandler *handler.ReportHandler,
	uploadHandler *handler.UploadHandler,
) *Router {
	return &Router{
		subjectHandler:   subjectHandler,
		recordHandler:    recordHandler,
		stageHandler:     stageHandler,
		lifestyleHandler: lifestyleHandler,
		tagHandler:       tagHandler,
		reportHandler:    reportHandler,
		uploadHandler:    uploadHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/subjects", func(r chi.Router) {
			r.Get("/", rt.subjectHandler.List)
			r.Post("/", rt.subjectHandler.Create)
			r.Get("/{id}", rt.subjectHandler.GetByID)
			r.Put("/{id}", rt.subjectHandler.Replace)
			r.Patch("/{id}", rt.subjectHandler.Update)
			r.Delete("/{id}", rt.subjectHandler.Delete)
			r.Post("/{id}/restore", rt.subjectHandler.Restore)
		})

		r.Route("/records", func(r chi.Router) {
			r.Get("/", rt.recordHandler.List)
			r.Post("/", rt.recordHandler.Create)
			r.Get("/{id}", rt.recordHandler.GetByID)
			r.Put("/{id}", rt.recordHandler.Replace)
			r.Patch("/{id}", rt.recordHandler.Update)
			r.Delete("/{id}", rt.recordHandler.Delete)
			r.Post("/{id}/restore", rt.recordHandler.Restore)
		})

		r.Route("/sleep-stages", func(r chi.Router) {
			r.Get("/", rt.stageHandler.List)
			r.Post("/", rt.stageHandler.Create)
			r.Get("/by-record/{recordId}", rt.stageHandler.GetByRecord)
			r.Get("/{id}", rt.stageHandler.GetByID)
			r.Put("/{id}", rt.stageHandler.Replace)
			r.Patch("/{id}", rt.stageHandler.Update)
			r.Delete("/{id}", rt.stageHandler.Delete)
		})

		r.Route("/lifestyle-factors", func(r chi.Router) {
			r.Get("/", rt.lifestyleHandler.List)
			r.Post("/", rt.lifestyleHandler.Create)
			r.Get("/by-record/{recordId}", rt.lifestyleHandler.GetByRecord)
			r.Get("/{id}", rt.lifestyleHandler.GetByID)
			r.Put("/{id}", rt.lifestyleHandler.Replace)
			r.Patch("/{id}", rt.lifestyleHandler.Update)
			r.Delete("/{id}", rt.lifestyleHandler.Delete)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", rt.tagHandler.List)
			r.Post("/", rt.tagHandler.Create)
			r.Get("/{id}", rt.tagHandler.GetByID)
			r.Put("/{id}", rt.tagHandler.Rename)
			r.Delete("/{id}", rt.tagHandler.Delete)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/aggregates", rt.reportHandler.Aggregates)
			r.Get("/timeseries", rt.reportHandler.Timeseries)
			r.Get("/distribution", rt.reportHandler.Distribution)
			r.Get("/habits-quality", rt.reportHandler.HabitsQuality)
			r.Get("/records.csv", rt.reportHandler.ExportRecords)
			r.Get("/subjects.csv", rt.reportHandler.ExportSubjects)
			r.Get("/insights", rt.reportHandler.Insights)
		})

		r.Route("/uploads", func(r chi.Router) {
			r.Post("/", rt.uploadHandler.Upload)
			r.Patch("/records/{id}/attach", rt.uploadHandler.Attach)
		})
	})

	return r
}
