package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dvaldes/sueno-habitos/internal/api/validation"
	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/service"
	"github.com/dvaldes/sueno-habitos/pkg/problem"
)

type SubjectHandler struct {
	service service.SubjectService
}

func NewSubjectHandler(service service.SubjectService) *SubjectHandler {
	return &SubjectHandler{service: service}
}

// Create handles POST /api/subjects
// @Summary Create subject
// @Description Register a study subject. Names are whitespace-normalized and pattern-checked, gender must be M, F or O.
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body domain.CreateSubjectRequest true "Subject data"
// @Success 201 {object} domain.SubjectResponse
// @Failure 400 {object} problem.Problem "Invalid name, age, gender or tag ids"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /subjects [post]
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	subject, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "Failed to create subject")
		return
	}

	writeJSON(w, http.StatusCreated, subject.ToResponse())
}

// GetByID handles GET /api/subjects/{id}
// @Summary Get subject
// @Tags subjects
// @Produce json
// @Param id path integer true "Subject ID"
// @Success 200 {object} domain.SubjectResponse
// @Failure 400 {object} problem.Problem "Invalid id"
// @Failure 404 {object} problem.Problem "Subject not found"
// @Failure 410 {object} problem.Problem "Subject deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /subjects/{id} [get]
func (h *SubjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid subject ID").Write(w)
		return
	}

	subject, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch subject")
		return
	}

	writeJSON(w, http.StatusOK, subject.ToResponse())
}

// List handles GET /api/subjects
// @Summary List subjects
// @Description List subjects with optional gender, age range and name filters.
// @Tags subjects
// @Produce json
// @Param gender query string false "Gender filter (M, F, O)"
// @Param age_min query integer false "Minimum age"
// @Param age_max query integer false "Maximum age"
// @Param q query string false "Name substring filter"
// @Param include_deleted query boolean false "Include soft-deleted subjects"
// @Success 200 {array} domain.SubjectResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /subjects [get]
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseSubjectFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	subjects, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err, "Failed to list subjects")
		return
	}

	responses := make([]domain.SubjectResponse, len(subjects))
	for i, subject := range subjects {
		responses[i] = subject.ToResponse()
	}
	writeJSON(w, http.StatusOK, responses)
}

// Replace handles PUT /api/subjects/{id}
// @Summary Replace subject
// @Description Fully replace a subject's fields and tag set.
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path integer true "Subject ID"
// @Param request body domain.CreateSubjectRequest true "Subject data"
// @Success 200 {object} domain.SubjectResponse
// @Failure 400 {object} problem.Problem "Invalid payload"
// @Failure 404 {object} problem.Problem "Subject not found"
// @Failure 410 {object} problem.Problem "Subject deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /subjects/{id} [put]
func (h *SubjectHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid subject ID").Write(w)
		return
	}

	var req domain.CreateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	tagIDs := req.TagIDs
	if tagIDs == nil {
		tagIDs = []uint{}
	}
	update := domain.UpdateSubjectRequest{
		Name:   req.Name,
		Age:    &req.Age,
		Gender: &req.Gender,
		TagIDs: tagIDs,
	}

	subject, err := h.service.Update(r.Context(), id, &update)
	if err != nil {
		writeDomainError(w, err, "Failed to update subject")
		return
	}

	writeJSON(w, http.StatusOK, subject.ToResponse())
}

// Update handles PATCH /api/subjects/{id}
// @Summary Update subject
// @Description Partially update a subject. Supplying is_deleted=false restores a deleted subject.
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path integer true "Subject ID"
// @Param request body domain.UpdateSubjectRequest true "Fields to update"
// @Success 200 {object} domain.SubjectResponse
// @Failure 400 {object} problem.Problem "Invalid payload"
// @Failure 404 {object} problem.Problem "Subject not found"
// @Failure 410 {object} problem.Problem "Subject deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /subjects/{id} [patch]
func (h *SubjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid subject ID").Write(w)
		return
	}

	var req domain.UpdateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	subject, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, "Failed to update subject")
		return
	}

	writeJSON(w, http.StatusOK, subject.ToResponse())
}

// Delete handles DELETE /api/subjects/{id}
// @Summary Delete subject
// @Description Soft-delete a subject. The row and its records survive for reporting exclusion.
// @Tags subjects
// @Param id path integer true "Subject ID"
// @Success 204 "Deleted"
// @Failure 404 {object} problem.Problem "Subject not found"
// @Failure 410 {object} problem.Problem "Subject already deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /subjects/{id} [delete]
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid subject ID").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "Failed to delete subject")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /api/subjects/{id}/restore
// @Summary Restore subject
// @Tags subjects
// @Produce json
// @Param id path integer true "Subject ID"
// @Success 200 {object} domain.SubjectResponse
// @Failure 404 {object} problem.Problem "Subject not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /subjects/{id}/restore [post]
func (h *SubjectHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid subject ID").Write(w)
		return
	}

	subject, err := h.service.Restore(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Failed to restore subject")
		return
	}

	writeJSON(w, http.StatusOK, subject.ToResponse())
}

func parseSubjectFilter(r *http.Request) (domain.SubjectFilter, []problem.FieldError) {
	var filter domain.SubjectFilter
	var fieldErrors []problem.FieldError

	filter.Gender = r.URL.Query().Get("gender")
	filter.Query = r.URL.Query().Get("q")
	filter.IncludeDeleted = r.URL.Query().Get("include_deleted") == "true"

	if ageStr := r.URL.Query().Get("age_min"); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil || age < 0 {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "age_min", Message: "must be a non-negative integer"})
		} else {
			filter.AgeMin = &age
		}
	}
	if ageStr := r.URL.Query().Get("age_max"); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil || age < 0 {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "age_max", Message: "must be a non-negative integer"})
		} else {
			filter.AgeMax = &age
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
