package truco

// Snapshot is the persisted form of a Match. ScoreUs and ScoreThem are
// written for readers of the stored document; Restore recomputes them from
// PointHistory.
type Snapshot struct {
	ScoreUs       int          `json:"scoreUs"`
	ScoreThem     int          `json:"scoreThem"`
	GameMode      Mode         `json:"gameMode,omitempty"`
	WinningScore  int          `json:"winningScore,omitempty"`
	MatchWinsUs   int          `json:"matchWinsUs"`
	MatchWinsThem int          `json:"matchWinsThem"`
	PointHistory  []PointEvent `json:"pointHistory"`
	NameUs        string       `json:"nameUs"`
	NameThem      string       `json:"nameThem"`
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		ScoreUs:       m.Score(Us),
		ScoreThem:     m.Score(Them),
		GameMode:      m.mode,
		WinningScore:  m.winningScore,
		MatchWinsUs:   m.winsUs,
		MatchWinsThem: m.winsThem,
		PointHistory:  m.History(),
		NameUs:        m.nameUs,
		NameThem:      m.nameThem,
	}
}

// Restore rebuilds a Match from a snapshot. Missing fields take the values
// in defaults; malformed history events are dropped.
func Restore(s Snapshot, defaults Config) *Match {
	cfg := defaults
	if s.GameMode.Valid() {
		cfg.Mode = s.GameMode
	}
	if s.WinningScore > 0 {
		cfg.WinningScore = s.WinningScore
	}
	if s.NameUs != "" {
		cfg.NameUs = s.NameUs
	}
	if s.NameThem != "" {
		cfg.NameThem = s.NameThem
	}

	m := New(cfg)
	for _, ev := range s.PointHistory {
		if ev.Side.Valid() && ev.Points > 0 {
			m.history = append(m.history, ev)
		}
	}
	m.winsUs = min(max(s.MatchWinsUs, 0), MaxMatchWins)
	m.winsThem = min(max(s.MatchWinsThem, 0), MaxMatchWins)
	return m
}
