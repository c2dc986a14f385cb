package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"hiretrack-backend/application/services"
	"hiretrack-backend/domain/core/aggregates"
	"hiretrack-backend/pkg/common"
)

// maxDocumentBytes bounds the legacy replace body; the roster is small by
// design and anything larger is a client bug.
const maxDocumentBytes = 4 << 20

// DocumentHandler serves the legacy whole-document endpoint the SPA uses:
// GET returns the entire stored graph, POST replaces it wholesale. The
// response bodies are bare (no envelope) for compatibility.
type DocumentHandler struct {
	service *services.DocumentService
	logger  *zap.Logger
}

// NewDocumentHandler creates a document handler
func NewDocumentHandler(service *services.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger,
	}
}

// GetDocument handles GET /api/graph
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetDocument(r.Context())
	if err != nil {
		h.logger.Error("Failed to load document", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondRaw(w, http.StatusOK, doc)
}

// ReplaceDocument handles POST /api/graph
func (h *DocumentHandler) ReplaceDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes)

	// The legacy SPA posts the document as-is; decode leniently into the
	// typed shape rather than writing arbitrary bytes to disk.
	var doc aggregates.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid document body: "+err.Error())
		return
	}

	if err := h.service.ReplaceDocument(r.Context(), &doc); err != nil {
		h.logger.Error("Failed to replace document", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondRaw(w, http.StatusOK, map[string]string{"status": "ok"})
}
