package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dvaldes/sueno-habitos/internal/api/validation"
	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/service"
	"github.com/dvaldes/sueno-habitos/pkg/problem"
)

type TagHandler struct {
	service service.TagService
}

func NewTagHandler(service service.TagService) *TagHandler {
	return &TagHandler{service: service}
}

// Create handles POST /api/tags
// @Summary Create tag
// @Description Create a descriptive tag. Names are unique.
// @Tags tags
// @Accept json
// @Produce json
// @Param request body domain.CreateTagRequest true "Tag data"
// @Success 201 {object} domain.Tag
// @Failure 409 {object} problem.Problem "Tag name already exists"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /tags [post]
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	tag, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "Failed to create tag")
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

// GetByID handles GET /api/tags/{id}
// @Summary Get tag
// @Tags tags
// @Produce json
// @Param id path integer true "Tag ID"
// @Success 200 {object} domain.Tag
// @Failure 404 {object} problem.Problem "Tag not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /tags/{id} [get]
func (h *TagHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid tag ID").Write(w)
		return
	}

	tag, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch tag")
		return
	}

	writeJSON(w, http.StatusOK, tag)
}

// List handles GET /api/tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} domain.Tag
// @Failure 500 {object} problem.Problem "Server error"
// @Router /tags [get]
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "Failed to list tags")
		return
	}
	if tags == nil {
		tags = []domain.Tag{}
	}
	writeJSON(w, http.StatusOK, tags)
}

// Rename handles PUT /api/tags/{id}
// @Summary Rename tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path integer true "Tag ID"
// @Param request body domain.CreateTagRequest true "New tag name"
// @Success 200 {object} domain.Tag
// @Failure 404 {object} problem.Problem "Tag not found"
// @Failure 409 {object} problem.Problem "Tag name already exists"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /tags/{id} [put]
func (h *TagHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid tag ID").Write(w)
		return
	}

	var req domain.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	tag, err := h.service.Rename(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, "Failed to rename tag")
		return
	}

	writeJSON(w, http.StatusOK, tag)
}

// Delete handles DELETE /api/tags/{id}
// @Summary Delete tag
// @Description Delete a tag. Blocked while subjects still reference it.
// @Tags tags
// @Param id path integer true "Tag ID"
// @Success 204 "Deleted"
// @Failure 404 {object} problem.Problem "Tag not found"
// @Failure 409 {object} problem.Problem "Tag still assigned to subjects"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /tags/{id} [delete]
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid tag ID").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "Failed to delete tag")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
