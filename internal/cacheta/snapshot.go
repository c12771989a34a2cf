package cacheta

import "github.com/merev/scoreboard-api/internal/scoring"

type Snapshot struct {
	Players       []Player `json:"players"`
	InitialPoints int      `json:"initialPoints,omitempty"`
}

func (t *Table) Snapshot() Snapshot {
	return Snapshot{
		Players:       t.Players(),
		InitialPoints: t.startingPoints,
	}
}

// Restore rebuilds a table from a snapshot. Players with a missing or
// repeated id get a fresh one, and short histories are padded with None so
// every player ends up with the same number of rounds.
func Restore(s Snapshot, defaults Config) *Table {
	cfg := defaults
	if s.InitialPoints > 0 {
		cfg.StartingPoints = s.InitialPoints
	}
	cfg.Players = []string{}
	t := New(cfg)

	rounds := 0
	for _, p := range s.Players {
		rounds = max(rounds, len(p.History))
	}

	seen := make(map[string]bool, len(s.Players))
	for i, sp := range s.Players {
		p := &Player{
			ID:      sp.ID,
			Name:    scoring.NormalizeName(sp.Name, scoring.Placeholder(t.nameFormat, i+1)),
			History: make([]Action, rounds),
			Pending: sp.Pending,
		}
		if p.ID == "" || seen[p.ID] {
			p.ID = t.newID()
		}
		seen[p.ID] = true
		copy(p.History, sp.History)
		t.players = append(t.players, p)
	}
	return t
}
