package handlers

import (
	"net/http"

	"github.com/sapperhq/sapper/internal/service"
)

type MoveHandler struct {
	svc *service.InferenceService
}

func NewMoveHandler(svc *service.InferenceService) *MoveHandler {
	return &MoveHandler{svc: svc}
}

// Safe returns a proven-safe unopened cell, or 204 when the agent cannot
// prove one — the normal "no move available" condition.
func (h *MoveHandler) Safe(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	move, err := h.svc.SafeMove(r.Context(), id)
	if err != nil {
		writeInferenceError(w, err)
		return
	}
	if move == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, move)
}

// Random returns a random undetermined cell, or 204 when the board is
// exhausted.
func (h *MoveHandler) Random(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	move, err := h.svc.RandomMove(r.Context(), id)
	if err != nil {
		writeInferenceError(w, err)
		return
	}
	if move == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, move)
}
