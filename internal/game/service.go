package game

import (
	"context"
	"log"
	"sync"

	"github.com/merev/scoreboard-api/internal/cacheta"
	"github.com/merev/scoreboard-api/internal/fodinha"
	"github.com/merev/scoreboard-api/internal/settings"
	"github.com/merev/scoreboard-api/internal/truco"
)

// Service owns the single live match of each game. Every mutation runs to
// completion under the lock and is then handed to the repository for a
// background save.
type Service struct {
	repo *Repository

	mu      sync.Mutex
	truco   *truco.Match
	cacheta *cacheta.Table
	fodinha *fodinha.Table
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Mount loads settings and the three matches. It must finish before any
// request is served.
func (s *Service) Mount(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if saved, ok := s.repo.LoadSettings(ctx); ok {
		settings.Init(saved)
	}

	s.truco = s.repo.LoadTruco(ctx, trucoDefaults())
	s.cacheta = s.repo.LoadCacheta(ctx, cachetaDefaults())
	s.fodinha = s.repo.LoadFodinha(ctx, fodinhaDefaults())
	log.Printf("tables mounted: truco %d events, cacheta %d rounds, fodinha %d rounds",
		len(s.truco.History()), s.cacheta.RoundCount(), s.fodinha.RoundCount())
}

func trucoDefaults() truco.Config {
	tr := settings.Translator()
	return truco.Config{NameUs: tr.T("truco.us"), NameThem: tr.T("truco.them")}
}

func cachetaDefaults() cacheta.Config {
	return cacheta.Config{NameFormat: settings.Translator().T("player.placeholder")}
}

func fodinhaDefaults() fodinha.Config {
	return fodinha.Config{NameFormat: settings.Translator().T("player.placeholder")}
}

// -----------------------------------------------------------------------------
// Truco
// -----------------------------------------------------------------------------

func (s *Service) TrucoView() TrucoView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newTrucoView(s.truco)
}

// UpdateTruco applies fn and persists the match.
func (s *Service) UpdateTruco(fn func(m *truco.Match) truco.ScoreResult) TrucoView {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := fn(s.truco)
	s.repo.SaveTruco(s.truco)

	view := newTrucoView(s.truco)
	if res.MatchComplete {
		view.MatchComplete = true
		view.Winner = res.Winner
		view.Message = settings.Translator().T("common.winner_text", s.truco.Name(res.Winner))
	}
	return view
}

// -----------------------------------------------------------------------------
// Cacheta
// -----------------------------------------------------------------------------

func (s *Service) CachetaView() CachetaView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newCachetaView(s.cacheta)
}

// UpdateCacheta applies fn and persists the table unless fn fails, in which
// case the table is known to be untouched.
func (s *Service) UpdateCacheta(fn func(t *cacheta.Table) error) (CachetaView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.cacheta); err != nil {
		return newCachetaView(s.cacheta), err
	}
	s.repo.SaveCacheta(s.cacheta)
	return newCachetaView(s.cacheta), nil
}

// -----------------------------------------------------------------------------
// Fodinha
// -----------------------------------------------------------------------------

func (s *Service) FodinhaView() FodinhaView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newFodinhaView(s.fodinha)
}

func (s *Service) UpdateFodinha(fn func(t *fodinha.Table) error) (FodinhaView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.fodinha); err != nil {
		return newFodinhaView(s.fodinha), err
	}
	s.repo.SaveFodinha(s.fodinha)
	return newFodinhaView(s.fodinha), nil
}

// -----------------------------------------------------------------------------
// Settings
// -----------------------------------------------------------------------------

// UpdateSettings applies the non-empty fields of req and persists the result.
func (s *Service) UpdateSettings(req SettingsRequest) settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Locale != "" {
		settings.SetLocale(req.Locale)
	}
	if req.Theme != "" {
		settings.SetTheme(req.Theme)
	}
	cur := settings.Current()
	s.repo.SaveSettings(cur)
	return cur
}

// ClearAll wipes stored data, restores the startup settings and starts
// every game over from defaults.
func (s *Service) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repo.ClearAll()
	settings.Reset()
	s.truco = truco.New(trucoDefaults())
	s.cacheta = cacheta.New(cachetaDefaults())
	s.fodinha = fodinha.New(fodinhaDefaults())
	log.Println("all scoreboard data cleared")
}
