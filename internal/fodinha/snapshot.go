package fodinha

import "github.com/merev/scoreboard-api/internal/scoring"

type Snapshot struct {
	Players      []Player    `json:"players"`
	InitialLives int         `json:"initialLives,omitempty"`
	PenaltyMode  PenaltyMode `json:"penaltyMode,omitempty"`
	CardsInRound int         `json:"cardsInRound,omitempty"`
	RoundPhase   Phase       `json:"roundPhase,omitempty"`
}

func (t *Table) Snapshot() Snapshot {
	return Snapshot{
		Players:      t.Players(),
		InitialLives: t.startingLives,
		PenaltyMode:  t.penaltyMode,
		CardsInRound: t.cardsInRound,
		RoundPhase:   t.phase,
	}
}

// Restore rebuilds a table from a snapshot. Stored lives are ignored in
// favour of the history fold; absent settings fall back to defaults.
func Restore(s Snapshot, defaults Config) *Table {
	cfg := defaults
	if s.InitialLives > 0 {
		cfg.StartingLives = s.InitialLives
	}
	if s.PenaltyMode.Valid() {
		cfg.PenaltyMode = s.PenaltyMode
	}
	cfg.Players = []string{}
	t := New(cfg)

	if s.CardsInRound > 0 {
		t.cardsInRound = s.CardsInRound
	}
	if s.RoundPhase.Valid() {
		t.phase = s.RoundPhase
	}

	seen := make(map[string]bool, len(s.Players))
	for i, sp := range s.Players {
		p := &Player{
			ID:         sp.ID,
			Name:       scoring.NormalizeName(sp.Name, scoring.Placeholder(t.nameFormat, i+1)),
			History:    make([]int, 0, len(sp.History)),
			PendingBid: scoring.Clamp(sp.PendingBid, 0, t.cardsInRound),
			PendingWon: scoring.Clamp(sp.PendingWon, 0, t.cardsInRound),
		}
		if p.ID == "" || seen[p.ID] {
			p.ID = t.newID()
		}
		seen[p.ID] = true
		for _, d := range sp.History {
			p.History = append(p.History, max(0, d))
		}
		t.recompute(p)
		t.players = append(t.players, p)
	}
	return t
}
