package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/merev/scoreboard-api/internal/fodinha"
)

// GET /api/fodinha
func (h *Handler) GetFodinha(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.FodinhaView())
}

// POST /api/fodinha/players
func (h *Handler) AddFodinhaPlayer(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateFodinha(func(t *fodinha.Table) error {
		t.AddPlayer(req.Name)
		return nil
	})
	writeResult(w, view, err)
}

// PUT /api/fodinha/players/{id}
func (h *Handler) RenameFodinhaPlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req NameRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateFodinha(func(t *fodinha.Table) error {
		t.RenamePlayer(id, req.Name)
		return nil
	})
	writeResult(w, view, err)
}

// DELETE /api/fodinha/players/{id}
func (h *Handler) RemoveFodinhaPlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := h.svc.UpdateFodinha(func(t *fodinha.Table) error {
		t.RemovePlayer(id)
		return nil
	})
	writeResult(w, view, err)
}

// POST /api/fodinha/players/{id}/pending
func (h *Handler) AdjustFodinhaPending(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req DeltaRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateFodinha(func(t *fodinha.Table) error {
		t.AdjustPending(id, req.Delta)
		return nil
	})
	writeResult(w, view, err)
}

// POST /api/fodinha/advance
func (h *Handler) AdvanceFodinha(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.UpdateFodinha(func(t *fodinha.Table) error {
		return t.AdvancePhase()
	})
	writeResult(w, view, err)
}

// PUT /api/fodinha/rounds/{round}/players/{id}
func (h *Handler) AdjustFodinhaDamage(w http.ResponseWriter, r *http.Request) {
	round, ok := roundParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var req DeltaRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateFodinha(func(t *fodinha.Table) error {
		t.AdjustHistoryDamage(id, round, req.Delta)
		return nil
	})
	writeResult(w, view, err)
}

// DELETE /api/fodinha/rounds/{round}
func (h *Handler) DeleteFodinhaRound(w http.ResponseWriter, r *http.Request) {
	round, ok := roundParam(w, r)
	if !ok {
		return
	}
	view, err := h.svc.UpdateFodinha(func(t *fodinha.Table) error {
		t.DeleteRound(round)
		return nil
	})
	writeResult(w, view, err)
}

// PUT /api/fodinha/config
func (h *Handler) ConfigureFodinha(w http.ResponseWriter, r *http.Request) {
	var req FodinhaConfigRequest
	if !decode(w, r, &req) {
		return
	}
	if req.PenaltyMode != nil && !req.PenaltyMode.Valid() {
		http.Error(w, "invalid penalty mode", http.StatusBadRequest)
		return
	}
	view, err := h.svc.UpdateFodinha(func(t *fodinha.Table) error {
		if req.StartingLives != nil {
			t.SetStartingLives(*req.StartingLives)
		}
		if req.PenaltyMode != nil {
			t.SetPenaltyMode(*req.PenaltyMode)
		}
		return nil
	})
	writeResult(w, view, err)
}

// POST /api/fodinha/reset
func (h *Handler) ResetFodinha(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.UpdateFodinha(func(t *fodinha.Table) error {
		t.Reset()
		return nil
	})
	writeResult(w, view, err)
}
