// Package cacheta scores Cacheta tables: every player starts with a pool of
// points and loses some each round depending on how the round went for them.
package cacheta

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Action is a player's outcome for one round. The zero value is "none".
type Action string

const (
	None Action = ""
	Won  Action = "won"
	Fold Action = "fold"
	Lost Action = "lost"
)

func (a Action) Valid() bool {
	switch a {
	case None, Won, Fold, Lost:
		return true
	}
	return false
}

// Cost is the number of points the action takes away.
func (a Action) Cost() int {
	switch a {
	case Fold:
		return 1
	case Lost:
		return 2
	}
	return 0
}

// toggle returns next, or None when next repeats the current action.
func (a Action) toggle(next Action) Action {
	if next == a {
		return None
	}
	return next
}

// MarshalJSON writes None as null.
func (a Action) MarshalJSON() ([]byte, error) {
	if a == None {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

func (a *Action) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = None
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Action(s).Valid() {
		return fmt.Errorf("unknown cacheta action %q", s)
	}
	*a = Action(s)
	return nil
}

const DefaultStartingPoints = 10

// Points folds a history into the remaining points, floored at zero.
func Points(startingPoints int, history []Action) int {
	pts := startingPoints
	for _, a := range history {
		pts -= a.Cost()
	}
	return max(0, pts)
}
