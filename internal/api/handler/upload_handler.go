package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/service"
	"github.com/dvaldes/sueno-habitos/internal/storage"
	"github.com/dvaldes/sueno-habitos/pkg/problem"
)

// maxUploadBytes caps attachment uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	storage       storage.Client
	recordService service.SleepRecordService
}

func NewUploadHandler(storage storage.Client, recordService service.SleepRecordService) *UploadHandler {
	return &UploadHandler{
		storage:       storage,
		recordService: recordService,
	}
}

// Upload handles POST /api/uploads
// @Summary Upload an attachment
// @Description Upload a file (multipart field "file") to object storage and return its public URL.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} domain.UploadResponse
// @Failure 400 {object} problem.Problem "Missing or oversized file"
// @Failure 503 {object} problem.Problem "Storage not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /uploads [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		problem.BadRequest("Invalid multipart body or file too large").Write(w)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		problem.BadRequest("Missing multipart field: file").Write(w)
		return
	}
	defer file.Close()

	publicURL, err := h.storage.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			problem.ServiceUnavailable("File storage is not configured").Write(w)
			return
		}
		problem.InternalError("Failed to upload file").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, domain.UploadResponse{PublicURL: publicURL})
}

type attachRequest struct {
	URL string `json:"url"`
}

// Attach handles PATCH /api/uploads/records/{id}/attach
// @Summary Attach an uploaded file to a sleep record
// @Tags uploads
// @Accept json
// @Produce json
// @Param id path integer true "Record ID"
// @Param request body handler.attachRequest true "Public URL returned by the upload endpoint"
// @Success 200 {object} domain.SleepRecordResponse
// @Failure 400 {object} problem.Problem "Missing url"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 410 {object} problem.Problem "Record deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /uploads/records/{id}/attach [patch]
func (h *UploadHandler) Attach(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		problem.BadRequest("Invalid record ID").Write(w)
		return
	}

	var req attachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		problem.BadRequest("Body must contain a url").Write(w)
		return
	}

	record, err := h.recordService.Attach(r.Context(), id, req.URL)
	if err != nil {
		writeDomainError(w, err, "Failed to attach file to record")
		return
	}

	writeJSON(w, http.StatusOK, record.ToResponse())
}
