package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dvaldes/sueno-habitos/internal/api/validation"
	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/service"
	"github.com/dvaldes/sueno-habitos/pkg/problem"
)

type LifestyleHandler struct {
	service service.LifestyleService
}

func NewLifestyleHandler(service service.LifestyleService) *LifestyleHandler {
	return &LifestyleHandler{service: service}
}

// Create handles POST /api/lifestyle-factors
// @Summary Create lifestyle factors
// @Description Attach caffeine, alcohol, smoking and exercise descriptors to a sleep record. One row per record.
// @Tags lifestyle-factors
// @Accept json
// @Produce json
// @Param request body domain.CreateLifestyleRequest true "Lifestyle data"
// @Success 201 {object} domain.LifestyleFactors
// @Failure 404 {object} problem.Problem "Sleep record not found"
// @Failure 409 {object} problem.Problem "Record already has lifestyle factors"
// @Failure 410 {object} problem.Problem "Sleep record deleted"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /lifestyle-factors [post]
func (h *LifestyleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLifestyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	factors, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "Failed to create lifestyle factors")
		return
	}

	writeJSON(w, http.StatusCreated, factors)
}

// GetByID handles GET /api/lifestyle-factors/{id}
// @Summary Get lifestyle factors
// @Tags lifestyle-factors
// @Produce json
// @Param id path integer true "Lifestyle ID"
// @Success 200 {object} domain.LifestyleFactors
// @Failure 404 {object} problem.Problem "Lifestyle factors not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /lifestyle-factors/{id} [get]
func (h *LifestyleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid lifestyle ID").Write(w)
		return
	}

	factors, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch lifestyle factors")
		return
	}

	writeJSON(w, http.StatusOK, factors)
}

// GetByRecord handles GET /api/lifestyle-factors/by-record/{recordId}
// @Summary Get lifestyle factors for a record
// @Tags lifestyle-factors
// @Produce json
// @Param recordId path integer true "Sleep record ID"
// @Success 200 {object} domain.LifestyleFactors
// @Failure 404 {object} problem.Problem "No lifestyle factors for this record"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /lifestyle-factors/by-record/{recordId} [get]
func (h *LifestyleHandler) GetByRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := parseIDParam(r, "recordId")
	if err != nil {
		problem.BadRequest("Invalid record ID").Write(w)
		return
	}

	factors, err := h.service.GetByRecordID(r.Context(), recordID)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch lifestyle factors")
		return
	}

	writeJSON(w, http.StatusOK, factors)
}

// List handles GET /api/lifestyle-factors
// @Summary List lifestyle factors
// @Tags lifestyle-factors
// @Produce json
// @Success 200 {array} domain.LifestyleFactors
// @Failure 500 {object} problem.Problem "Server error"
// @Router /lifestyle-factors [get]
func (h *LifestyleHandler) List(w http.ResponseWriter, r *http.Request) {
	factors, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "Failed to list lifestyle factors")
		return
	}
	if factors == nil {
		factors = []domain.LifestyleFactors{}
	}
	writeJSON(w, http.StatusOK, factors)
}

// Replace handles PUT /api/lifestyle-factors/{id}
// @Summary Replace lifestyle factors
// @Tags lifestyle-factors
// @Accept json
// @Produce json
// @Param id path integer true "Lifestyle ID"
// @Param request body domain.CreateLifestyleRequest true "Lifestyle data"
// @Success 200 {object} domain.LifestyleFactors
// @Failure 404 {object} problem.Problem "Lifestyle factors or record not found"
// @Failure 409 {object} problem.Problem "Target record already has lifestyle factors"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /lifestyle-factors/{id} [put]
func (h *LifestyleHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid lifestyle ID").Write(w)
		return
	}

	var req domain.CreateLifestyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	factors, err := h.service.Replace(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, "Failed to replace lifestyle factors")
		return
	}

	writeJSON(w, http.StatusOK, factors)
}

// Update handles PATCH /api/lifestyle-factors/{id}
// @Summary Update lifestyle factors
// @Tags lifestyle-factors
// @Accept json
// @Produce json
// @Param id path integer true "Lifestyle ID"
// @Param request body domain.UpdateLifestyleRequest true "Fields to update"
// @Success 200 {object} domain.LifestyleFactors
// @Failure 404 {object} problem.Problem "Lifestyle factors or record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /lifestyle-factors/{id} [patch]
func (h *LifestyleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid lifestyle ID").Write(w)
		return
	}

	var req domain.UpdateLifestyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	factors, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, "Failed to update lifestyle factors")
		return
	}

	writeJSON(w, http.StatusOK, factors)
}

// Delete handles DELETE /api/lifestyle-factors/{id}
// @Summary Delete lifestyle factors
// @Tags lifestyle-factors
// @Param id path integer true "Lifestyle ID"
// @Success 204 "Deleted"
// @Failure 404 {object} problem.Problem "Lifestyle factors not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /lifestyle-factors/{id} [delete]
func (h *LifestyleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid lifestyle ID").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "Failed to delete lifestyle factors")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
