package game

import (
	"github.com/merev/scoreboard-api/internal/cacheta"
	"github.com/merev/scoreboard-api/internal/fodinha"
	"github.com/merev/scoreboard-api/internal/settings"
	"github.com/merev/scoreboard-api/internal/truco"
)

// -----------------------------------------------------------------------------
// Requests
// -----------------------------------------------------------------------------

// ScoreRequest is the body of POST /api/truco/score. A zero delta scores
// the current stake.
type ScoreRequest struct {
	Side  truco.Side `json:"side"`
	Delta int        `json:"delta"`
}

type SideRequest struct {
	Side truco.Side `json:"side"`
}

type ResetRequest struct {
	Full bool `json:"full"`
}

type TrucoConfigRequest struct {
	Mode         *truco.Mode `json:"mode"`
	WinningScore *int        `json:"winningScore"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type ActionRequest struct {
	Action cacheta.Action `json:"action"`
}

type CachetaConfigRequest struct {
	StartingPoints int `json:"startingPoints"`
}

type DeltaRequest struct {
	Delta int `json:"delta"`
}

type FodinhaConfigRequest struct {
	StartingLives *int                 `json:"startingLives"`
	PenaltyMode   *fodinha.PenaltyMode `json:"penaltyMode"`
}

type SettingsRequest struct {
	Locale string         `json:"locale"`
	Theme  settings.Theme `json:"theme"`
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

type SideView struct {
	Side      truco.Side `json:"side"`
	Name      string     `json:"name"`
	Score     int        `json:"score"`
	MatchWins int        `json:"matchWins"`
}

type TrucoView struct {
	Mode          truco.Mode         `json:"mode"`
	WinningScore  int                `json:"winningScore"`
	Stake         int                `json:"stake"`
	NextStake     int                `json:"nextStake"`
	StakeRaised   bool               `json:"stakeRaised"`
	StakeSequence []int              `json:"stakeSequence"`
	Sides         []SideView         `json:"sides"`
	History       []truco.PointEvent `json:"history"`
	MatchComplete bool               `json:"matchComplete,omitempty"`
	Winner        truco.Side         `json:"winner,omitempty"`
	Message       string             `json:"message,omitempty"`
}

func newTrucoView(m *truco.Match) TrucoView {
	v := TrucoView{
		Mode:          m.Mode(),
		WinningScore:  m.WinningScore(),
		Stake:         m.Stake(),
		NextStake:     m.NextStake(),
		StakeRaised:   m.StakeRaised(),
		StakeSequence: m.StakeSequence(),
		History:       m.History(),
	}
	for _, side := range []truco.Side{truco.Us, truco.Them} {
		v.Sides = append(v.Sides, SideView{
			Side:      side,
			Name:      m.Name(side),
			Score:     m.Score(side),
			MatchWins: m.MatchWins(side),
		})
	}
	return v
}

type CachetaPlayerView struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Points  int              `json:"points"`
	Out     bool             `json:"out"`
	Pending cacheta.Action   `json:"pending"`
	History []cacheta.Action `json:"history"`
}

type CachetaView struct {
	StartingPoints int                 `json:"startingPoints"`
	RoundCount     int                 `json:"roundCount"`
	Players        []CachetaPlayerView `json:"players"`
}

func newCachetaView(t *cacheta.Table) CachetaView {
	v := CachetaView{
		StartingPoints: t.StartingPoints(),
		RoundCount:     t.RoundCount(),
		Players:        []CachetaPlayerView{},
	}
	for _, p := range t.Players() {
		pts := t.CurrentPoints(p.ID)
		v.Players = append(v.Players, CachetaPlayerView{
			ID:      p.ID,
			Name:    p.Name,
			Points:  pts,
			Out:     pts <= 0,
			Pending: p.Pending,
			History: p.History,
		})
	}
	return v
}

type FodinhaPlayerView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Lives      int    `json:"lives"`
	Active     bool   `json:"active"`
	PendingBid int    `json:"pendingBid"`
	PendingWon int    `json:"pendingWon"`
	History    []int  `json:"history"`
}

type FodinhaView struct {
	StartingLives int                 `json:"startingLives"`
	PenaltyMode   fodinha.PenaltyMode `json:"penaltyMode"`
	CardsInRound  int                 `json:"cardsInRound"`
	Phase         fodinha.Phase       `json:"phase"`
	RoundCount    int                 `json:"roundCount"`
	BidTotal      int                 `json:"bidTotal"`
	WonTotal      int                 `json:"wonTotal"`
	Players       []FodinhaPlayerView `json:"players"`
}

func newFodinhaView(t *fodinha.Table) FodinhaView {
	v := FodinhaView{
		StartingLives: t.StartingLives(),
		PenaltyMode:   t.PenaltyMode(),
		CardsInRound:  t.CardsInRound(),
		Phase:         t.Phase(),
		RoundCount:    t.RoundCount(),
		Players:       []FodinhaPlayerView{},
	}
	for _, p := range t.Players() {
		if p.Active() {
			v.BidTotal += p.PendingBid
			v.WonTotal += p.PendingWon
		}
		v.Players = append(v.Players, FodinhaPlayerView{
			ID:         p.ID,
			Name:       p.Name,
			Lives:      p.Lives,
			Active:     p.Active(),
			PendingBid: p.PendingBid,
			PendingWon: p.PendingWon,
			History:    p.History,
		})
	}
	return v
}
