package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hiretrack-backend/application/services"
	"hiretrack-backend/domain/core/aggregates"
	"hiretrack-backend/domain/core/entities"
	"hiretrack-backend/pkg/common"
	"hiretrack-backend/pkg/utils"
)

// maxRequestBytes bounds the typed mutation bodies
const maxRequestBytes = 1 << 20

// PersonHandler handles the typed per-person mutation endpoints. These sit
// on top of the same whole-document replace persistence as the legacy
// endpoint; they are a convenience surface, not a consistency upgrade.
type PersonHandler struct {
	service *services.DocumentService
	logger  *zap.Logger
}

// NewPersonHandler creates a person handler
func NewPersonHandler(service *services.DocumentService, logger *zap.Logger) *PersonHandler {
	return &PersonHandler{
		service: service,
		logger:  logger,
	}
}

// CreatePersonRequest represents the request body for creating a person
type CreatePersonRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof='To do' Interview CEO Rejected"`
	Starred bool   `json:"starred,omitempty"`
	Team    string `json:"team,omitempty" validate:"omitempty,max=100"`
	// ConnectTo links the new person to an existing one.
	ConnectTo string `json:"connect_to,omitempty"`
}

// UpdatePersonRequest carries the full set of editable fields. Updates are
// whole-record on purpose: no partial field spreads.
type UpdatePersonRequest struct {
	Name    string   `json:"name" validate:"required,min=1,max=200"`
	Status  string   `json:"status" validate:"required,oneof='To do' Interview CEO Rejected"`
	Starred bool     `json:"starred"`
	Team    string   `json:"team" validate:"omitempty,max=100"`
	Notes   string   `json:"notes"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
}

// AddChildRequest represents the request body for adding a child person
type AddChildRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof='To do' Interview CEO Rejected"`
	Starred bool   `json:"starred,omitempty"`
}

// MovePersonRequest records a manual drag position
type MovePersonRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// CreatePerson handles POST /people
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req CreatePersonRequest
	if err := common.ParseJSONBody(w, r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	person, err := h.service.AddPerson(r.Context(), aggregates.NewPersonInput{
		Name:    req.Name,
		Status:  entities.Status(req.Status),
		Starred: req.Starred,
		Team:    req.Team,
	}, req.ConnectTo)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, person)
}

// UpdatePerson handles PUT /people/{personID}
func (h *PersonHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")

	var req UpdatePersonRequest
	if err := common.ParseJSONBody(w, r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	person, err := h.service.UpdatePerson(r.Context(), entities.Person{
		ID:      personID,
		Name:    req.Name,
		Status:  entities.Status(req.Status),
		Starred: req.Starred,
		Team:    req.Team,
		Notes:   req.Notes,
		X:       req.X,
		Y:       req.Y,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, person)
}

// AddChild handles POST /people/{personID}/children
func (h *PersonHandler) AddChild(w http.ResponseWriter, r *http.Request) {
	parentID := chi.URLParam(r, "personID")

	var req AddChildRequest
	if err := common.ParseJSONBody(w, r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	child, err := h.service.AddChildPerson(r.Context(), parentID, aggregates.NewPersonInput{
		Name:    req.Name,
		Status:  entities.Status(req.Status),
		Starred: req.Starred,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, child)
}

// MovePerson handles PUT /people/{personID}/position
func (h *PersonHandler) MovePerson(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")

	var req MovePersonRequest
	if err := common.ParseJSONBody(w, r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	if err := h.service.MovePerson(r.Context(), personID, *req.X, *req.Y); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"id": personID})
}

// DeletePerson handles DELETE /people/{personID}
func (h *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")

	if err := h.service.DeletePerson(r.Context(), personID); err != nil {
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
