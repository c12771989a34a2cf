package game

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/merev/scoreboard-api/internal/scoring"
	"github.com/merev/scoreboard-api/internal/settings"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GET /api/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, settings.Current())
}

// PUT /api/settings
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Theme != "" && !req.Theme.Valid() {
		http.Error(w, "invalid theme", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.UpdateSettings(req))
}

// POST /api/settings/clear
func (h *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// roundParam reads the {round} URL parameter.
func roundParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	round, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil {
		http.Error(w, "invalid round", http.StatusBadRequest)
		return 0, false
	}
	return round, true
}

type errorBody struct {
	Error  string         `json:"error"`
	Reason scoring.Reason `json:"reason,omitempty"`
	State  any            `json:"state,omitempty"`
}

// writeResult writes state, or a translated 422 when err is a validation
// error. Any other error is a 500.
func writeResult(w http.ResponseWriter, state any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, state)
		return
	}
	reason, ok := scoring.ReasonOf(err)
	if !ok {
		http.Error(w, "internal error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{
		Error:  settings.Translator().T("error." + string(reason)),
		Reason: reason,
		State:  state,
	})
}

// Helper to write JSON responses.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
