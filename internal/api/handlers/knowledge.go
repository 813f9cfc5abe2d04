package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sapperhq/sapper/internal/domain"
	"github.com/sapperhq/sapper/internal/service"
)

type KnowledgeHandler struct {
	svc *service.InferenceService
}

func NewKnowledgeHandler(svc *service.InferenceService) *KnowledgeHandler {
	return &KnowledgeHandler{svc: svc}
}

type observationRequest struct {
	Cell  domain.Cell `json:"cell"`
	Count int         `json:"count"`
}

// Observe ingests a revealed cell and its neighbor-mine count.
func (h *KnowledgeHandler) Observe(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req observationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.svc.Observe(r.Context(), id, req.Cell, req.Count)
	if err != nil {
		writeInferenceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

type flagRequest struct {
	Cell domain.Cell `json:"cell"`
}

// FlagMine injects an externally known mine fact.
func (h *KnowledgeHandler) FlagMine(w http.ResponseWriter, r *http.Request) {
	h.flag(w, r, h.svc.FlagMine)
}

// FlagSafe injects an externally known safe fact.
func (h *KnowledgeHandler) FlagSafe(w http.ResponseWriter, r *http.Request) {
	h.flag(w, r, h.svc.FlagSafe)
}

func (h *KnowledgeHandler) flag(w http.ResponseWriter, r *http.Request, apply func(context.Context, uuid.UUID, domain.Cell) (*service.Snapshot, error)) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req flagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := apply(r.Context(), id, req.Cell)
	if err != nil {
		writeInferenceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Get returns the current knowledge snapshot.
func (h *KnowledgeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.svc.Knowledge(r.Context(), id)
	if err != nil {
		writeInferenceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func writeInferenceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrOutOfBounds),
		errors.Is(err, domain.ErrCellRevealed),
		errors.Is(err, domain.ErrCountRange):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInconsistent):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "inference failed")
	}
}
