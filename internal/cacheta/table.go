package cacheta

import (
	"github.com/merev/scoreboard-api/internal/scoring"
)

type Player struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	History []Action `json:"history"`
	Pending Action   `json:"currentAction"`
}

type Config struct {
	StartingPoints int
	// NameFormat renders placeholder names, e.g. "JOGADOR %d".
	NameFormat string
	// Players seeds the roster by name. Nil means three placeholders.
	Players []string
}

// Table is a Cacheta match. Every player's history has the same length at
// all times; current points are always derived from it.
type Table struct {
	startingPoints int
	nameFormat     string
	players        []*Player
	newID          func() string
}

func New(cfg Config) *Table {
	t := &Table{
		startingPoints: cfg.StartingPoints,
		nameFormat:     cfg.NameFormat,
		players:        []*Player{},
		newID:          scoring.NewID,
	}
	if t.startingPoints <= 0 {
		t.startingPoints = DefaultStartingPoints
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

func (t *Table) StartingPoints() int { return t.startingPoints }

// SetStartingPoints changes the pool every player starts from. Values
// below 1 are ignored.
func (t *Table) SetStartingPoints(n int) {
	if n > 0 {
		t.startingPoints = n
	}
}

// Players returns copies of the roster in seating order.
func (t *Table) Players() []Player {
	out := make([]Player, len(t.players))
	for i, p := range t.players {
		out[i] = p.clone()
	}
	return out
}

func (p *Player) clone() Player {
	c := *p
	c.History = append([]Action{}, p.History...)
	return c
}

// RoundCount is the number of committed rounds.
func (t *Table) RoundCount() int {
	if len(t.players) == 0 {
		return 0
	}
	return len(t.players[0].History)
}

func (t *Table) find(id string) *Player {
	for _, p := range t.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (t *Table) points(p *Player) int {
	return Points(t.startingPoints, p.History)
}

// CurrentPoints returns the player's remaining points, or 0 if unknown.
func (t *Table) CurrentPoints(id string) int {
	if p := t.find(id); p != nil {
		return t.points(p)
	}
	return 0
}

// Out reports whether the player has run out of points.
func (t *Table) Out(id string) bool {
	return t.CurrentPoints(id) <= 0
}

// SetPendingAction toggles the action a player will carry into the next
// commit. Selecting the current action again clears it. Players who are
// out take no input.
func (t *Table) SetPendingAction(id string, a Action) {
	p := t.find(id)
	if p == nil || !a.Valid() || t.points(p) <= 0 {
		return
	}
	p.Pending = p.Pending.toggle(a)
}

// CommitRound appends every pending action (none when unset) to its
// player's history and clears the pending actions. A round needs a winner
// among the players who still have points. Players who are out always
// record none, whatever they had pending.
func (t *Table) CommitRound() error {
	hasWinner := false
	alive := 0
	for _, p := range t.players {
		if t.points(p) <= 0 {
			continue
		}
		alive++
		if p.Pending == Won {
			hasWinner = true
		}
	}
	if !hasWinner && alive > 0 {
		return scoring.NewValidationError(scoring.ReasonWinnerRequired, "%d players still have points", alive)
	}

	for _, p := range t.players {
		a := p.Pending
		if t.points(p) <= 0 {
			a = None
		}
		p.History = append(p.History, a)
		p.Pending = None
	}
	return nil
}

// EditHistoryEntry toggles a committed action. Out-of-range rounds and
// unknown players are ignored.
func (t *Table) EditHistoryEntry(id string, round int, a Action) {
	p := t.find(id)
	if p == nil || !a.Valid() || round < 0 || round >= len(p.History) {
		return
	}
	p.History[round] = p.History[round].toggle(a)
}

// CheckRound validates an already committed round after editing: it must
// still have a winner.
func (t *Table) CheckRound(round int) error {
	if round < 0 || round >= t.RoundCount() {
		return nil
	}
	for _, p := range t.players {
		if p.History[round] == Won {
			return nil
		}
	}
	return scoring.NewValidationError(scoring.ReasonWinnerRequired, "round %d has no winner", round+1)
}

// DeleteRound drops one round from every player's history.
func (t *Table) DeleteRound(round int) {
	if round < 0 || round >= t.RoundCount() {
		return
	}
	for _, p := range t.players {
		p.History = append(p.History[:round:round], p.History[round+1:]...)
	}
}

// AddPlayer seats a new player. Rounds already played count as lost for a
// late joiner so nobody enters with more points than the table.
func (t *Table) AddPlayer(name string) Player {
	p := &Player{
		ID:      t.newID(),
		Name:    scoring.NormalizeName(name, scoring.Placeholder(t.nameFormat, len(t.players)+1)),
		History: make([]Action, t.RoundCount()),
	}
	for i := range p.History {
		p.History[i] = Lost
	}
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

// Reset wipes every history and pending action, keeping the roster.
func (t *Table) Reset() {
	for _, p := range t.players {
		p.History = []Action{}
		p.Pending = None
	}
}
