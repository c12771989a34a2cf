package fodinha

import "github.com/merev/scoreboard-api/internal/scoring"

type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Lives      int    `json:"lives"`
	History    []int  `json:"history"`
	PendingBid int    `json:"currentBid"`
	PendingWon int    `json:"currentWon"`
}

// Active reports whether the player still takes part in rounds.
func (p Player) Active() bool { return p.Lives > 0 }

func (p *Player) clone() Player {
	c := *p
	c.History = append([]int{}, p.History...)
	return c
}

type Config struct {
	StartingLives int
	PenaltyMode   PenaltyMode
	// NameFormat renders placeholder names, e.g. "JOGADOR %d".
	NameFormat string
	// Players seeds the roster by name. Nil means three placeholders.
	Players []string
}

// Table is a Fodinha match. Lives are always recomputed from history.
// Eliminated players stop receiving history entries, so unlike Cacheta the
// histories of a table are not required to share a length.
type Table struct {
	startingLives int
	penaltyMode   PenaltyMode
	cardsInRound  int
	phase         Phase
	nameFormat    string
	players       []*Player
	newID         func() string
}

func New(cfg Config) *Table {
	t := &Table{
		startingLives: cfg.StartingLives,
		penaltyMode:   cfg.PenaltyMode,
		cardsInRound:  1,
		phase:         Betting,
		nameFormat:    cfg.NameFormat,
		players:       []*Player{},
		newID:         scoring.NewID,
	}
	if t.startingLives <= 0 {
		t.startingLives = DefaultStartingLives
	}
	if !t.penaltyMode.Valid() {
		t.penaltyMode = DefaultPenaltyMode
	}
	names := cfg.Players
	if names == nil {
		names = []string{"", "", ""}
	}
	for _, n := range names {
		t.AddPlayer(n)
	}
	return t
}

func (t *Table) StartingLives() int { return t.startingLives }
func (t *Table) PenaltyMode() PenaltyMode { return t.penaltyMode }
func (t *Table) CardsInRound() int { return t.cardsInRound }
func (t *Table) Phase() Phase { return t.phase }

func (t *Table) Players() []Player {
	out := make([]Player, len(t.players))
	for i, p := range t.players {
		out[i] = p.clone()
	}
	return out
}

// RoundCount is the number of finished rounds, i.e. the longest history.
func (t *Table) RoundCount() int {
	n := 0
	for _, p := range t.players {
		n = max(n, len(p.History))
	}
	return n
}

func (t *Table) find(id string) *Player {
	for _, p := range t.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (t *Table) recompute(p *Player) {
	p.Lives = Lives(t.startingLives, p.History)
}

// SetStartingLives changes the life pool and recomputes every player.
func (t *Table) SetStartingLives(n int) {
	if n <= 0 {
		return
	}
	t.startingLives = n
	for _, p := range t.players {
		t.recompute(p)
	}
}

// SetPenaltyMode applies to rounds finished from now on.
func (t *Table) SetPenaltyMode(m PenaltyMode) {
	if m.Valid() {
		t.penaltyMode = m
	}
}

// AdjustPending moves the bid (betting phase) or the tricks taken (results
// phase) by delta, kept within [0, cardsInRound]. Eliminated players are
// left alone.
func (t *Table) AdjustPending(id string, delta int) {
	p := t.find(id)
	if p == nil || !p.Active() {
		return
	}
	switch t.phase {
	case Betting:
		p.PendingBid = scoring.Clamp(p.PendingBid+delta, 0, t.cardsInRound)
	case Results:
		p.PendingWon = scoring.Clamp(p.PendingWon+delta, 0, t.cardsInRound)
	}
}

// AdvancePhase closes the betting phase, or closes the results phase and
// finishes the round. Bids may not add up to the number of cards; tricks
// taken must add up to it exactly.
func (t *Table) AdvancePhase() error {
	bids, won := 0, 0
	for _, p := range t.players {
		if p.Active() {
			bids += p.PendingBid
			won += p.PendingWon
		}
	}

	switch t.phase {
	case Betting:
		if bids == t.cardsInRound {
			return scoring.NewValidationError(scoring.ReasonBidsEqualCards, "bids add up to %d cards", t.cardsInRound)
		}
		t.phase = Results
	case Results:
		if won != t.cardsInRound {
			return scoring.NewValidationError(scoring.ReasonWonMismatch, "%d tricks reported for %d cards", won, t.cardsInRound)
		}
		t.finishRound()
		t.cardsInRound++
		t.phase = Betting
	}
	return nil
}

func (t *Table) finishRound() {
	for _, p := range t.players {
		if !p.Active() {
			continue
		}
		p.History = append(p.History, t.penaltyMode.Damage(p.PendingBid, p.PendingWon))
		t.recompute(p)
		p.PendingBid = 0
		p.PendingWon = 0
	}
}

// AdjustHistoryDamage corrects a finished round's damage by delta (never
// below zero) and recomputes the player's lives from the whole history.
func (t *Table) AdjustHistoryDamage(id string, round, delta int) {
	p := t.find(id)
	if p == nil || round < 0 || round >= len(p.History) {
		return
	}
	p.History[round] = max(0, p.History[round]+delta)
	t.recompute(p)
}

// DeleteRound drops a round from every player who has an entry for it.
func (t *Table) DeleteRound(round int) {
	if round < 0 {
		return
	}
	for _, p := range t.players {
		if round < len(p.History) {
			p.History = append(p.History[:round:round], p.History[round+1:]...)
			t.recompute(p)
		}
	}
}

// AddPlayer seats a new player with full lives. Rounds already played are
// recorded as zero damage.
func (t *Table) AddPlayer(name string) Player {
	p := &Player{
		ID:      t.newID(),
		Name:    scoring.NormalizeName(name, scoring.Placeholder(t.nameFormat, len(t.players)+1)),
		History: make([]int, t.RoundCount()),
	}
	t.recompute(p)
	t.players = append(t.players, p)
	return p.clone()
}

func (t *Table) RenamePlayer(id, name string) {
	if p := t.find(id); p != nil {
		p.Name = scoring.NormalizeName(name, p.Name)
	}
}

func (t *Table) RemovePlayer(id string) {
	for i, p := range t.players {
		if p.ID == id {
			t.players = append(t.players[:i], t.players[i+1:]...)
			return
		}
	}
}

// Reset starts the match over with the same roster and settings.
func (t *Table) Reset() {
	t.cardsInRound = 1
	t.phase = Betting
	for _, p := range t.players {
		p.History = []int{}
		p.PendingBid = 0
		p.PendingWon = 0
		t.recompute(p)
	}
}
