package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dvaldes/sueno-habitos/internal/api/validation"
	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/service"
	"github.com/dvaldes/sueno-habitos/pkg/problem"
)

type SleepStageHandler struct {
	service service.SleepStageService
}

func NewSleepStageHandler(service service.SleepStageService) *SleepStageHandler {
	return &SleepStageHandler{service: service}
}

// Create handles POST /api/sleep-stages
// @Summary Create stage breakdown
// @Description Attach a REM/deep/light percentage breakdown to a sleep record. One breakdown per record.
// @Tags sleep-stages
// @Accept json
// @Produce json
// @Param request body domain.CreateSleepStageRequest true "Stage data"
// @Success 201 {object} domain.SleepStage
// @Failure 404 {object} problem.Problem "Sleep record not found"
// @Failure 409 {object} problem.Problem "Record already has a breakdown"
// @Failure 410 {object} problem.Problem "Sleep record deleted"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-stages [post]
func (h *SleepStageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSleepStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	stage, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "Failed to create sleep stage")
		return
	}

	writeJSON(w, http.StatusCreated, stage)
}

// GetByID handles GET /api/sleep-stages/{id}
// @Summary Get stage breakdown
// @Tags sleep-stages
// @Produce json
// @Param id path integer true "Stage ID"
// @Success 200 {object} domain.SleepStage
// @Failure 404 {object} problem.Problem "Stage not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-stages/{id} [get]
func (h *SleepStageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid stage ID").Write(w)
		return
	}

	stage, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch sleep stage")
		return
	}

	writeJSON(w, http.StatusOK, stage)
}

// GetByRecord handles GET /api/sleep-stages/by-record/{recordId}
// @Summary Get stage breakdown for a record
// @Tags sleep-stages
// @Produce json
// @Param recordId path integer true "Sleep record ID"
// @Success 200 {object} domain.SleepStage
// @Failure 404 {object} problem.Problem "No breakdown for this record"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-stages/by-record/{recordId} [get]
func (h *SleepStageHandler) GetByRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := parseIDParam(r, "recordId")
	if err != nil {
		problem.BadRequest("Invalid record ID").Write(w)
		return
	}

	stage, err := h.service.GetByRecordID(r.Context(), recordID)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch sleep stage")
		return
	}

	writeJSON(w, http.StatusOK, stage)
}

// List handles GET /api/sleep-stages
// @Summary List stage breakdowns
// @Tags sleep-stages
// @Produce json
// @Success 200 {array} domain.SleepStage
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-stages [get]
func (h *SleepStageHandler) List(w http.ResponseWriter, r *http.Request) {
	stages, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "Failed to list sleep stages")
		return
	}
	if stages == nil {
		stages = []domain.SleepStage{}
	}
	writeJSON(w, http.StatusOK, stages)
}

// Replace handles PUT /api/sleep-stages/{id}
// @Summary Replace stage breakdown
// @Tags sleep-stages
// @Accept json
// @Produce json
// @Param id path integer true "Stage ID"
// @Param request body domain.CreateSleepStageRequest true "Stage data"
// @Success 200 {object} domain.SleepStage
// @Failure 404 {object} problem.Problem "Stage or record not found"
// @Failure 409 {object} problem.Problem "Target record already has a breakdown"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-stages/{id} [put]
func (h *SleepStageHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid stage ID").Write(w)
		return
	}

	var req domain.CreateSleepStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	stage, err := h.service.Replace(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, "Failed to replace sleep stage")
		return
	}

	writeJSON(w, http.StatusOK, stage)
}

// Update handles PATCH /api/sleep-stages/{id}
// @Summary Update stage breakdown
// @Tags sleep-stages
// @Accept json
// @Produce json
// @Param id path integer true "Stage ID"
// @Param request body domain.UpdateSleepStageRequest true "Fields to update"
// @Success 200 {object} domain.SleepStage
// @Failure 404 {object} problem.Problem "Stage or record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-stages/{id} [patch]
func (h *SleepStageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid stage ID").Write(w)
		return
	}

	var req domain.UpdateSleepStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	stage, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, "Failed to update sleep stage")
		return
	}

	writeJSON(w, http.StatusOK, stage)
}

// Delete handles DELETE /api/sleep-stages/{id}
// @Summary Delete stage breakdown
// @Tags sleep-stages
// @Param id path integer true "Stage ID"
// @Success 204 "Deleted"
// @Failure 404 {object} problem.Problem "Stage not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-stages/{id} [delete]
func (h *SleepStageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid stage ID").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "Failed to delete sleep stage")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
