package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/merev/scoreboard-api/internal/game"
)

func NewRouter(gh *game.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/truco", func(tr chi.Router) {
			tr.Get("/", gh.GetTruco)                    // GET /api/truco
			tr.Post("/score", gh.ScoreTruco)            // POST /api/truco/score
			tr.Post("/undo", gh.UndoTruco)              // POST /api/truco/undo
			tr.Post("/stake", gh.RaiseTrucoStake)       // POST /api/truco/stake
			tr.Post("/reset", gh.ResetTruco)            // POST /api/truco/reset
			tr.Put("/config", gh.ConfigureTruco)        // PUT /api/truco/config
			tr.Put("/names/{side}", gh.RenameTrucoSide) // PUT /api/truco/names/:side
		})

		api.Route("/cacheta", func(c chi.Router) {
			c.Get("/", gh.GetCacheta)                                  // GET /api/cacheta
			c.Post("/players", gh.AddCachetaPlayer)                    // POST /api/cacheta/players
			c.Put("/players/{id}", gh.RenameCachetaPlayer)             // PUT /api/cacheta/players/:id
			c.Delete("/players/{id}", gh.RemoveCachetaPlayer)          // DELETE /api/cacheta/players/:id
			c.Post("/players/{id}/action", gh.SetCachetaAction)        // POST /api/cacheta/players/:id/action
			c.Post("/rounds", gh.CommitCachetaRound)                   // POST /api/cacheta/rounds
			c.Put("/rounds/{round}/players/{id}", gh.EditCachetaRound) // PUT /api/cacheta/rounds/:round/players/:id
			c.Post("/rounds/{round}/check", gh.CheckCachetaRound)      // POST /api/cacheta/rounds/:round/check
			c.Delete("/rounds/{round}", gh.DeleteCachetaRound)         // DELETE /api/cacheta/rounds/:round
			c.Put("/config", gh.ConfigureCacheta)                      // PUT /api/cacheta/config
			c.Post("/reset", gh.ResetCacheta)                          // POST /api/cacheta/reset
		})

		api.Route("/fodinha", func(f chi.Router) {
			f.Get("/", gh.GetFodinha)                                     // GET /api/fodinha
			f.Post("/players", gh.AddFodinhaPlayer)                       // POST /api/fodinha/players
			f.Put("/players/{id}", gh.RenameFodinhaPlayer)                // PUT /api/fodinha/players/:id
			f.Delete("/players/{id}", gh.RemoveFodinhaPlayer)             // DELETE /api/fodinha/players/:id
			f.Post("/players/{id}/pending", gh.AdjustFodinhaPending)      // POST /api/fodinha/players/:id/pending
			f.Post("/advance", gh.AdvanceFodinha)                         // POST /api/fodinha/advance
			f.Put("/rounds/{round}/players/{id}", gh.AdjustFodinhaDamage) // PUT /api/fodinha/rounds/:round/players/:id
			f.Delete("/rounds/{round}", gh.DeleteFodinhaRound)            // DELETE /api/fodinha/rounds/:round
			f.Put("/config", gh.ConfigureFodinha)                         // PUT /api/fodinha/config
			f.Post("/reset", gh.ResetFodinha)                             // POST /api/fodinha/reset
		})

		api.Get("/settings", gh.GetSettings)     // GET /api/settings
		api.Put("/settings", gh.UpdateSettings)  // PUT /api/settings
		api.Post("/settings/clear", gh.ClearAll) // POST /api/settings/clear
	})

	return r
}
