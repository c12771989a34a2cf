package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/merev/scoreboard-api/internal/cacheta"
)

// GET /api/cacheta
func (h *Handler) GetCacheta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.CachetaView())
}

// POST /api/cacheta/players
func (h *Handler) AddCachetaPlayer(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		t.AddPlayer(req.Name)
		return nil
	})
	writeResult(w, view, err)
}

// PUT /api/cacheta/players/{id}
func (h *Handler) RenameCachetaPlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req NameRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		t.RenamePlayer(id, req.Name)
		return nil
	})
	writeResult(w, view, err)
}

// DELETE /api/cacheta/players/{id}
func (h *Handler) RemoveCachetaPlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		t.RemovePlayer(id)
		return nil
	})
	writeResult(w, view, err)
}

// POST /api/cacheta/players/{id}/action
func (h *Handler) SetCachetaAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req ActionRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		t.SetPendingAction(id, req.Action)
		return nil
	})
	writeResult(w, view, err)
}

// POST /api/cacheta/rounds
func (h *Handler) CommitCachetaRound(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		return t.CommitRound()
	})
	writeResult(w, view, err)
}

// PUT /api/cacheta/rounds/{round}/players/{id}
func (h *Handler) EditCachetaRound(w http.ResponseWriter, r *http.Request) {
	round, ok := roundParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var req ActionRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		t.EditHistoryEntry(id, round, req.Action)
		return nil
	})
	writeResult(w, view, err)
}

// POST /api/cacheta/rounds/{round}/check
func (h *Handler) CheckCachetaRound(w http.ResponseWriter, r *http.Request) {
	round, ok := roundParam(w, r)
	if !ok {
		return
	}
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		return t.CheckRound(round)
	})
	writeResult(w, view, err)
}

// DELETE /api/cacheta/rounds/{round}
func (h *Handler) DeleteCachetaRound(w http.ResponseWriter, r *http.Request) {
	round, ok := roundParam(w, r)
	if !ok {
		return
	}
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		t.DeleteRound(round)
		return nil
	})
	writeResult(w, view, err)
}

// PUT /api/cacheta/config
func (h *Handler) ConfigureCacheta(w http.ResponseWriter, r *http.Request) {
	var req CachetaConfigRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		t.SetStartingPoints(req.StartingPoints)
		return nil
	})
	writeResult(w, view, err)
}

// POST /api/cacheta/reset
func (h *Handler) ResetCacheta(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.UpdateCacheta(func(t *cacheta.Table) error {
		t.Reset()
		return nil
	})
	writeResult(w, view, err)
}
