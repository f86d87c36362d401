package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dvaldes/sueno-habitos/internal/api/validation"
	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/service"
	"github.com/dvaldes/sueno-habitos/pkg/problem"
)

type SleepRecordHandler struct {
	service service.SleepRecordService
}

func NewSleepRecordHandler(service service.SleepRecordService) *SleepRecordHandler {
	return &SleepRecordHandler{service: service}
}

// Create handles POST /api/records
// @Summary Record a night of sleep
// @Description Create a sleep record. Bedtime and wake-up are wall-clock times anchored on record_date; a wake-up at or before bedtime rolls to the next day. Duration and efficiency are computed server-side and validated against plausibility bounds.
// @Tags records
// @Accept json
// @Produce json
// @Param request body domain.CreateSleepRecordRequest true "Sleep record data"
// @Success 201 {object} domain.SleepRecordResponse
// @Failure 400 {object} problem.Problem "Future date, out-of-range values or bad formats"
// @Failure 404 {object} problem.Problem "Subject not found"
// @Failure 410 {object} problem.Problem "Subject deleted"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records [post]
func (h *SleepRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "Failed to create sleep record")
		return
	}

	writeJSON(w, http.StatusCreated, record.ToResponse())
}

// GetByID handles GET /api/records/{id}
// @Summary Get sleep record
// @Tags records
// @Produce json
// @Param id path integer true "Record ID"
// @Success 200 {object} domain.SleepRecordResponse
// @Failure 400 {object} problem.Problem "Invalid id"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 410 {object} problem.Problem "Record deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records/{id} [get]
func (h *SleepRecordHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid record ID").Write(w)
		return
	}

	record, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch sleep record")
		return
	}

	writeJSON(w, http.StatusOK, record.ToResponse())
}

// List handles GET /api/records
// @Summary List sleep records
// @Description Paginated sleep history, newest first. Filter by date range, subject or subject gender.
// @Tags records
// @Produce json
// @Param date_from query string false "Start of date range (YYYY-MM-DD)" example(2024-03-01)
// @Param date_to query string false "End of date range (YYYY-MM-DD)" example(2024-03-31)
// @Param gender query string false "Subject gender filter (M, F, O)"
// @Param subject_id query integer false "Subject filter"
// @Param include_deleted query boolean false "Include soft-deleted records"
// @Param limit query integer false "Results per page (1-100)" default(20)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepRecordListResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records [get]
func (h *SleepRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseRecordFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err, "Failed to list sleep records")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Replace handles PUT /api/records/{id}
// @Summary Replace sleep record
// @Description Fully replace a record. The window is re-resolved and the metrics recomputed.
// @Tags records
// @Accept json
// @Produce json
// @Param id path integer true "Record ID"
// @Param request body domain.CreateSleepRecordRequest true "Sleep record data"
// @Success 200 {object} domain.SleepRecordResponse
// @Failure 400 {object} problem.Problem "Invalid payload"
// @Failure 404 {object} problem.Problem "Record or subject not found"
// @Failure 410 {object} problem.Problem "Record or subject deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records/{id} [put]
func (h *SleepRecordHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid record ID").Write(w)
		return
	}

	var req domain.CreateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Replace(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, "Failed to replace sleep record")
		return
	}

	writeJSON(w, http.StatusOK, record.ToResponse())
}

// Update handles PATCH /api/records/{id}
// @Summary Update sleep record
// @Description Partially update a record. Changing any of record_date, bedtime, wakeup_time or awakenings re-resolves the window and recomputes the metrics from the merged values. Supplying is_deleted=false restores a deleted record.
// @Tags records
// @Accept json
// @Produce json
// @Param id path integer true "Record ID"
// @Param request body domain.UpdateSleepRecordRequest true "Fields to update"
// @Success 200 {object} domain.SleepRecordResponse
// @Failure 400 {object} problem.Problem "Invalid payload"
// @Failure 404 {object} problem.Problem "Record or subject not found"
// @Failure 410 {object} problem.Problem "Record or subject deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records/{id} [patch]
func (h *SleepRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid record ID").Write(w)
		return
	}

	var req domain.UpdateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, "Failed to update sleep record")
		return
	}

	writeJSON(w, http.StatusOK, record.ToResponse())
}

// Delete handles DELETE /api/records/{id}
// @Summary Delete sleep record
// @Description Soft-delete a record. Deleted records drop out of lists and reports but stay restorable.
// @Tags records
// @Param id path integer true "Record ID"
// @Success 204 "Deleted"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 410 {object} problem.Problem "Record already deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records/{id} [delete]
func (h *SleepRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid record ID").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "Failed to delete sleep record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /api/records/{id}/restore
// @Summary Restore sleep record
// @Tags records
// @Produce json
// @Param id path integer true "Record ID"
// @Success 200 {object} domain.SleepRecordResponse
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records/{id}/restore [post]
func (h *SleepRecordHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid record ID").Write(w)
		return
	}

	record, err := h.service.Restore(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Failed to restore sleep record")
		return
	}

	writeJSON(w, http.StatusOK, record.ToResponse())
}

func parseRecordFilter(r *http.Request) (domain.SleepRecordFilter, []problem.FieldError) {
	var filter domain.SleepRecordFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("date_from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "date_from", Message: "must be a YYYY-MM-DD date"})
		} else {
			d := domain.NewDate(from.Year(), from.Month(), from.Day())
			filter.DateFrom = &d
		}
	}
	if toStr := r.URL.Query().Get("date_to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "date_to", Message: "must be a YYYY-MM-DD date"})
		} else {
			d := domain.NewDate(to.Year(), to.Month(), to.Day())
			filter.DateTo = &d
		}
	}

	filter.Gender = r.URL.Query().Get("gender")
	filter.IncludeDeleted = r.URL.Query().Get("include_deleted") == "true"
	filter.Cursor = r.URL.Query().Get("cursor")

	if subjStr := r.URL.Query().Get("subject_id"); subjStr != "" {
		subjID, err := strconv.ParseUint(subjStr, 10, 32)
		if err != nil || subjID == 0 {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "subject_id", Message: "must be a positive integer"})
		} else {
			filter.SubjectID = uint(subjID)
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "limit", Message: "must be a positive integer"})
		} else {
			filter.Limit = limit
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
