// Package truco tracks a two-sided race-to-N Truco match: the point history
// feeding the score graph, the escalating hand stake and match-win trophies.
package truco

import "github.com/merev/scoreboard-api/internal/scoring"

type Side string

const (
	Us   Side = "us"
	Them Side = "them"
)

func (s Side) Valid() bool { return s == Us || s == Them }

type Mode string

const (
	Paulista Mode = "paulista"
	Mineiro  Mode = "mineiro"
)

func (m Mode) Valid() bool { return m == Paulista || m == Mineiro }

const (
	DefaultWinningScore = 12
	// MaxMatchWins caps the trophy counter per side.
	MaxMatchWins = 5
)

// BaseStake is the value of an unraised hand.
func BaseStake(mode Mode) int {
	if mode == Mineiro {
		return 2
	}
	return 1
}

func stakeStep(mode Mode) int {
	if mode == Mineiro {
		return 2
	}
	return 3
}

// StakeSequence returns the escalation ladder for a mode, topped at
// winningScore. Paulista climbs 1,3,6,9,12 and mineiro 2,4,...,12 for the
// default target; other targets extend or cut the ladder and always end on
// winningScore itself.
func StakeSequence(mode Mode, winningScore int) []int {
	base := BaseStake(mode)
	seq := []int{base}
	if winningScore <= base {
		return seq
	}
	step := stakeStep(mode)
	for v := step; v <= winningScore; v += step {
		if v > base {
			seq = append(seq, v)
		}
	}
	if seq[len(seq)-1] != winningScore {
		seq = append(seq, winningScore)
	}
	return seq
}

// PointEvent is one scoring action as drawn on the history graph.
type PointEvent struct {
	Side   Side `json:"team"`
	Points int  `json:"points"`
}

type Config struct {
	Mode         Mode
	WinningScore int
	NameUs       string
	NameThem     string
}

func (c Config) withDefaults() Config {
	if !c.Mode.Valid() {
		c.Mode = Paulista
	}
	if c.WinningScore <= 0 {
		c.WinningScore = DefaultWinningScore
	}
	c.NameUs = scoring.NormalizeName(c.NameUs, string(Us))
	c.NameThem = scoring.NormalizeName(c.NameThem, string(Them))
	return c
}

// ScoreResult reports what a Score call did.
type ScoreResult struct {
	// MatchComplete is set when a positive score reached the winning score.
	// The match is not reset; the caller decides whether to start a new one.
	MatchComplete bool
	Winner        Side
}
