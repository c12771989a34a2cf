package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/merev/scoreboard-api/internal/truco"
)

// GET /api/truco
func (h *Handler) GetTruco(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.TrucoView())
}

// POST /api/truco/score
func (h *Handler) ScoreTruco(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.Side.Valid() {
		http.Error(w, "invalid side", http.StatusBadRequest)
		return
	}

	view := h.svc.UpdateTruco(func(m *truco.Match) truco.ScoreResult {
		if req.Delta == 0 {
			return m.AddPoints(req.Side)
		}
		return m.Apply(req.Side, req.Delta)
	})
	writeJSON(w, http.StatusOK, view)
}

// POST /api/truco/undo
func (h *Handler) UndoTruco(w http.ResponseWriter, r *http.Request) {
	var req SideRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.Side.Valid() {
		http.Error(w, "invalid side", http.StatusBadRequest)
		return
	}

	view := h.svc.UpdateTruco(func(m *truco.Match) truco.ScoreResult {
		return m.Undo(req.Side)
	})
	writeJSON(w, http.StatusOK, view)
}

// POST /api/truco/stake
func (h *Handler) RaiseTrucoStake(w http.ResponseWriter, r *http.Request) {
	view := h.svc.UpdateTruco(func(m *truco.Match) truco.ScoreResult {
		m.RaiseStake()
		return truco.ScoreResult{}
	})
	writeJSON(w, http.StatusOK, view)
}

// POST /api/truco/reset
func (h *Handler) ResetTruco(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if !decode(w, r, &req) {
		return
	}

	view := h.svc.UpdateTruco(func(m *truco.Match) truco.ScoreResult {
		m.Reset(req.Full)
		return truco.ScoreResult{}
	})
	writeJSON(w, http.StatusOK, view)
}

// PUT /api/truco/config
func (h *Handler) ConfigureTruco(w http.ResponseWriter, r *http.Request) {
	var req TrucoConfigRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Mode != nil && !req.Mode.Valid() {
		http.Error(w, "invalid mode", http.StatusBadRequest)
		return
	}

	view := h.svc.UpdateTruco(func(m *truco.Match) truco.ScoreResult {
		if req.Mode != nil {
			m.SetMode(*req.Mode)
		}
		if req.WinningScore != nil {
			m.SetWinningScore(*req.WinningScore)
		}
		return truco.ScoreResult{}
	})
	writeJSON(w, http.StatusOK, view)
}

// PUT /api/truco/names/{side}
func (h *Handler) RenameTrucoSide(w http.ResponseWriter, r *http.Request) {
	side := truco.Side(chi.URLParam(r, "side"))
	if !side.Valid() {
		http.Error(w, "invalid side", http.StatusBadRequest)
		return
	}
	var req NameRequest
	if !decode(w, r, &req) {
		return
	}

	view := h.svc.UpdateTruco(func(m *truco.Match) truco.ScoreResult {
		m.SetName(side, req.Name)
		return truco.ScoreResult{}
	})
	writeJSON(w, http.StatusOK, view)
}
