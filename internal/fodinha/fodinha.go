// Package fodinha scores Fodinha (Oh Hell) tables. Each round players bid
// how many tricks they will take, then report how many they took; missing
// the bid costs lives.
package fodinha

type PenaltyMode string

const (
	// PenaltyFixed costs one life on any miss.
	PenaltyFixed PenaltyMode = "fixed"
	// PenaltyDifference costs as many lives as the bid was off by.
	PenaltyDifference PenaltyMode = "difference"
)

func (m PenaltyMode) Valid() bool { return m == PenaltyFixed || m == PenaltyDifference }

// Damage is the number of lives lost for a round bid and result.
func (m PenaltyMode) Damage(bid, won int) int {
	diff := bid - won
	if diff < 0 {
		diff = -diff
	}
	if diff == 0 {
		return 0
	}
	if m == PenaltyDifference {
		return diff
	}
	return 1
}

type Phase string

const (
	Betting Phase = "betting"
	Results Phase = "results"
)

func (p Phase) Valid() bool { return p == Betting || p == Results }

const (
	DefaultStartingLives = 5
	DefaultPenaltyMode   = PenaltyFixed
)

// Lives folds a damage history into the remaining lives, floored at zero.
func Lives(startingLives int, history []int) int {
	lives := startingLives
	for _, d := range history {
		lives -= d
	}
	return max(0, lives)
}
