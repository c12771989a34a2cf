package truco

import "github.com/merev/scoreboard-api/internal/scoring"

// Match is the Truco scoreboard. Scores are never stored: they are folded
// from the point history on every read. The stake is ephemeral and resets
// after each scored hand.
type Match struct {
	mode         Mode
	winningScore int
	stake        int
	history      []PointEvent
	winsUs       int
	winsThem     int
	nameUs       string
	nameThem     string
}

func New(cfg Config) *Match {
	cfg = cfg.withDefaults()
	return &Match{
		mode:         cfg.Mode,
		winningScore: cfg.WinningScore,
		stake:        BaseStake(cfg.Mode),
		history:      []PointEvent{},
		nameUs:       cfg.NameUs,
		nameThem:     cfg.NameThem,
	}
}

func (m *Match) Mode() Mode { return m.mode }
func (m *Match) WinningScore() int { return m.winningScore }
func (m *Match) Stake() int { return m.stake }
func (m *Match) BaseStake() int { return BaseStake(m.mode) }
func (m *Match) StakeRaised() bool { return m.stake > BaseStake(m.mode) }
func (m *Match) StakeSequence() []int { return StakeSequence(m.mode, m.winningScore) }

// History returns a copy of the point events in scoring order.
func (m *Match) History() []PointEvent {
	out := make([]PointEvent, len(m.history))
	copy(out, m.history)
	return out
}

// Score folds the history for side, clamped to the winning score.
func (m *Match) Score(side Side) int {
	return min(m.rawScore(side), m.winningScore)
}

func (m *Match) rawScore(side Side) int {
	total := 0
	for _, ev := range m.history {
		if ev.Side == side {
			total += ev.Points
		}
	}
	return total
}

func (m *Match) MatchWins(side Side) int {
	if side == Them {
		return m.winsThem
	}
	return m.winsUs
}

func (m *Match) Name(side Side) string {
	if side == Them {
		return m.nameThem
	}
	return m.nameUs
}

// SetName renames a side; a blank name restores the side identifier.
func (m *Match) SetName(side Side, name string) {
	switch side {
	case Us:
		m.nameUs = scoring.NormalizeName(name, string(Us))
	case Them:
		m.nameThem = scoring.NormalizeName(name, string(Them))
	}
}

// AddPoints scores the current stake for side.
func (m *Match) AddPoints(side Side) ScoreResult {
	return m.Apply(side, m.stake)
}

// Undo takes one base-stake unit back from side's latest event. The score
// is re-derived from history and capped at the winning score, so undoing
// right after an overshooting win keeps showing the cap until the history
// falls back below it.
func (m *Match) Undo(side Side) ScoreResult {
	return m.Apply(side, -BaseStake(m.mode))
}

// Apply records delta points for side. A positive delta appends a history
// event and resets the stake; reaching the winning score bumps the side's
// trophy counter and flags the match as complete. A negative delta shrinks
// the side's most recent event by |delta|, or removes it when it is not
// larger than that; with no event to shrink it does nothing.
func (m *Match) Apply(side Side, delta int) ScoreResult {
	if !side.Valid() || delta == 0 {
		return ScoreResult{}
	}
	if delta < 0 {
		m.shrinkLatest(side, -delta)
		return ScoreResult{}
	}

	m.history = append(m.history, PointEvent{Side: side, Points: delta})
	m.stake = BaseStake(m.mode)

	if m.rawScore(side) < m.winningScore {
		return ScoreResult{}
	}
	switch side {
	case Us:
		m.winsUs = min(m.winsUs+1, MaxMatchWins)
	case Them:
		m.winsThem = min(m.winsThem+1, MaxMatchWins)
	}
	return ScoreResult{MatchComplete: true, Winner: side}
}

func (m *Match) shrinkLatest(side Side, amount int) {
	for i := len(m.history) - 1; i >= 0; i-- {
		if m.history[i].Side != side {
			continue
		}
		if m.history[i].Points > amount {
			m.history[i].Points -= amount
			return
		}
		m.history = append(m.history[:i], m.history[i+1:]...)
		return
	}
}

// NextStake is the value RaiseStake would move to, or 0 at the top.
func (m *Match) NextStake() int {
	for _, v := range m.StakeSequence() {
		if v > m.stake {
			return v
		}
	}
	return 0
}

// RaiseStake climbs one step up the stake ladder. At the top it is a no-op.
func (m *Match) RaiseStake() {
	if next := m.NextStake(); next > 0 {
		m.stake = next
	}
}

// Reset clears scores, history and stake. A full reset also clears the
// trophy counters.
func (m *Match) Reset(full bool) {
	m.history = []PointEvent{}
	m.stake = BaseStake(m.mode)
	if full {
		m.winsUs = 0
		m.winsThem = 0
	}
}

func (m *Match) scoreless() bool {
	return m.rawScore(Us) == 0 && m.rawScore(Them) == 0
}

// SetMode switches between paulista and mineiro. Before any point is scored
// this triggers a full reset; mid-match the recorded history is kept as is.
func (m *Match) SetMode(mode Mode) {
	if !mode.Valid() || mode == m.mode {
		return
	}
	m.mode = mode
	m.reconfigure()
}

// SetWinningScore changes the target. Values below 1 are ignored.
func (m *Match) SetWinningScore(n int) {
	if n <= 0 || n == m.winningScore {
		return
	}
	m.winningScore = n
	m.reconfigure()
}

func (m *Match) reconfigure() {
	if m.scoreless() {
		m.Reset(true)
		return
	}
	seq := m.StakeSequence()
	m.stake = scoring.Clamp(m.stake, seq[0], seq[len(seq)-1])
}
