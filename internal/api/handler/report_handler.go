package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/llm"
	"github.com/dvaldes/sueno-habitos/internal/service"
	"github.com/dvaldes/sueno-habitos/pkg/problem"
)

type ReportHandler struct {
	service         service.ReportService
	insightsService service.InsightsService
}

func NewReportHandler(service service.ReportService, insightsService service.InsightsService) *ReportHandler {
	return &ReportHandler{
		service:         service,
		insightsService: insightsService,
	}
}

// Aggregates handles GET /api/reports/aggregates
// @Summary Sleep averages by gender and age bucket
// @Description Average duration and efficiency grouped by gender (unknown values fold into O) and by age bucket. Out-of-bounds stored values are excluded.
// @Tags reports
// @Produce json
// @Param days query integer false "Reporting window in days" default(30)
// @Param min_n query integer false "Minimum group size for per-tag reports" default(3)
// @Success 200 {object} domain.AggregatesResponse
// @Failure 500 {object} problem.Problem "Server error"
// @Router /reports/aggregates [get]
func (h *ReportHandler) Aggregates(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Aggregates(r.Context(), parseReportFilter(r))
	if err != nil {
		problem.InternalError("Failed to compute aggregates").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Timeseries handles GET /api/reports/timeseries
// @Summary Daily average sleep duration
// @Tags reports
// @Produce json
// @Param days query integer false "Reporting window in days" default(30)
// @Success 200 {object} domain.TimeseriesResponse
// @Failure 500 {object} problem.Problem "Server error"
// @Router /reports/timeseries [get]
func (h *ReportHandler) Timeseries(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Timeseries(r.Context(), parseReportFilter(r))
	if err != nil {
		problem.InternalError("Failed to compute timeseries").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Distribution handles GET /api/reports/distribution
// @Summary Average sleep stage distribution
// @Tags reports
// @Produce json
// @Param days query integer false "Reporting window in days" default(30)
// @Success 200 {object} domain.DistributionResponse
// @Failure 500 {object} problem.Problem "Server error"
// @Router /reports/distribution [get]
func (h *ReportHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Distribution(r.Context(), parseReportFilter(r))
	if err != nil {
		problem.InternalError("Failed to compute distribution").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// HabitsQuality handles GET /api/reports/habits-quality
// @Summary Sleep quality per subject tag
// @Description Average efficiency and duration per tag, worst efficiency first. Tags with fewer than min_n records are dropped.
// @Tags reports
// @Produce json
// @Param days query integer false "Reporting window in days" default(30)
// @Param min_n query integer false "Minimum records per tag" default(3)
// @Success 200 {object} domain.HabitsQualityResponse
// @Failure 500 {object} problem.Problem "Server error"
// @Router /reports/habits-quality [get]
func (h *ReportHandler) HabitsQuality(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.HabitsQuality(r.Context(), parseReportFilter(r))
	if err != nil {
		problem.InternalError("Failed to compute habits report").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// ExportRecords handles GET /api/reports/records.csv
// @Summary Export sleep records as CSV
// @Tags reports
// @Produce text/csv
// @Param days query integer false "Reporting window in days" default(30)
// @Success 200 {string} string "CSV payload"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /reports/records.csv [get]
func (h *ReportHandler) ExportRecords(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sleep_records.csv"`)

	if err := h.service.ExportRecordsCSV(r.Context(), parseReportFilter(r), w); err != nil {
		problem.InternalError("Failed to export records").Write(w)
	}
}

// ExportSubjects handles GET /api/reports/subjects.csv
// @Summary Export subjects as CSV
// @Tags reports
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /reports/subjects.csv [get]
func (h *ReportHandler) ExportSubjects(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="subjects.csv"`)

	if err := h.service.ExportSubjectsCSV(r.Context(), w); err != nil {
		problem.InternalError("Failed to export subjects").Write(w)
	}
}

// Insights handles GET /api/reports/insights
// @Summary LLM narrative over the aggregated reports
// @Description Generate a non-medical narrative reading of the cohort aggregates. Requires OpenAI configuration.
// @Tags reports
// @Produce json
// @Param days query integer false "Reporting window in days" default(30)
// @Success 200 {object} domain.InsightsResponse
// @Failure 503 {object} problem.Problem "Insights not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /reports/insights [get]
func (h *ReportHandler) Insights(w http.ResponseWriter, r *http.Request) {
	response, err := h.insightsService.Generate(r.Context(), parseReportFilter(r))
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("Report insights are not configured").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func parseReportFilter(r *http.Request) domain.ReportFilter {
	var filter domain.ReportFilter
	if days, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil {
		filter.Days = days
	}
	if minN, err := strconv.Atoi(r.URL.Query().Get("min_n")); err == nil {
		filter.MinN = minN
	}
	return filter
}
