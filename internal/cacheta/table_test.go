package cacheta

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/merev/scoreboard-api/internal/scoring"
)

func newTestTable(t *testing.T, startingPoints int, names ...string) (*Table, []string) {
	t.Helper()
	table := New(Config{StartingPoints: startingPoints, NameFormat: "JOGADOR %d", Players: names})
	ids := make([]string, 0, len(names))
	for _, p := range table.Players() {
		ids = append(ids, p.ID)
	}
	return table, ids
}

func commit(t *testing.T, table *Table, ids []string, actions ...Action) {
	t.Helper()
	for i, a := range actions {
		if a != None {
			table.SetPendingAction(ids[i], a)
		}
	}
	if err := table.CommitRound(); err != nil {
		t.Fatalf("commit %v: %v", actions, err)
	}
}

func assertLockStep(t *testing.T, table *Table) {
	t.Helper()
	players := table.Players()
	for _, p := range players {
		if len(p.History) != table.RoundCount() {
			t.Fatalf("player %s has %d rounds, table has %d", p.Name, len(p.History), table.RoundCount())
		}
	}
}

func assertFold(t *testing.T, table *Table) {
	t.Helper()
	for _, p := range table.Players() {
		if got, want := table.CurrentPoints(p.ID), Points(table.StartingPoints(), p.History); got != want {
			t.Fatalf("player %s: points %d, fold %d", p.Name, got, want)
		}
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		history []Action
		want    int
	}{
		{name: "empty", start: 10, history: nil, want: 10},
		{name: "mixed", start: 10, history: []Action{Won, Fold, Lost, None}, want: 7},
		{name: "floored", start: 2, history: []Action{Lost, Lost}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Points(tt.start, tt.history); got != tt.want {
				t.Errorf("Points = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDefaultRoster(t *testing.T) {
	table := New(Config{NameFormat: "JOGADOR %d"})
	players := table.Players()
	if len(players) != 3 {
		t.Fatalf("players = %d, want 3", len(players))
	}
	if players[2].Name != "JOGADOR 3" {
		t.Errorf("name = %q", players[2].Name)
	}
	if table.StartingPoints() != DefaultStartingPoints {
		t.Errorf("starting points = %d", table.StartingPoints())
	}
}

func TestSetPendingActionToggles(t *testing.T) {
	table, ids := newTestTable(t, 10, "A", "B")

	table.SetPendingAction(ids[0], Fold)
	table.SetPendingAction(ids[0], Fold)
	if got := table.Players()[0].Pending; got != None {
		t.Errorf("second select should clear, got %q", got)
	}

	table.SetPendingAction(ids[0], Fold)
	table.SetPendingAction(ids[0], Won)
	if got := table.Players()[0].Pending; got != Won {
		t.Errorf("pending = %q, want won", got)
	}
}

func TestCommitRound(t *testing.T) {
	table, ids := newTestTable(t, 10, "A", "B", "C")

	commit(t, table, ids, Won, Fold, Lost)

	if table.RoundCount() != 1 {
		t.Fatalf("rounds = %d", table.RoundCount())
	}
	want := []int{10, 9, 8}
	for i, id := range ids {
		if got := table.CurrentPoints(id); got != want[i] {
			t.Errorf("player %d points = %d, want %d", i, got, want[i])
		}
	}
	for _, p := range table.Players() {
		if p.Pending != None {
			t.Errorf("pending not cleared for %s", p.Name)
		}
	}
}

func TestCommitRoundRequiresWinner(t *testing.T) {
	table, ids := newTestTable(t, 10, "A", "B", "C")
	commit(t, table, ids, Won, Lost, None)
	before := table.Players()

	table.SetPendingAction(ids[0], Fold)
	table.SetPendingAction(ids[1], Fold)
	err := table.CommitRound()

	if !errors.Is(err, scoring.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if reason, _ := scoring.ReasonOf(err); reason != scoring.ReasonWinnerRequired {
		t.Errorf("reason = %q", reason)
	}
	after := table.Players()
	for i := range before {
		if !reflect.DeepEqual(before[i].History, after[i].History) {
			t.Errorf("history changed for %s", before[i].Name)
		}
	}
	if after[0].Pending != Fold {
		t.Errorf("pending should survive a rejected commit")
	}
}

func TestEliminationScenario(t *testing.T) {
	table, ids := newTestTable(t, 2, "A", "B")

	commit(t, table, ids, Won, Lost)
	commit(t, table, ids, Won, Lost)

	if got := table.CurrentPoints(ids[1]); got != 0 {
		t.Fatalf("points = %d, want 0", got)
	}
	if !table.Out(ids[1]) {
		t.Errorf("player should be out")
	}

	// The eliminated player needs no pending action.
	commit(t, table, ids, Won, None)
	assertLockStep(t, table)
}

func TestEliminatedPlayerTakesNoInput(t *testing.T) {
	table, ids := newTestTable(t, 2, "A", "B")
	commit(t, table, ids, Won, Lost)

	table.SetPendingAction(ids[1], Won)
	if got := table.Players()[1].Pending; got != None {
		t.Fatalf("out player pending = %q, want none", got)
	}
	err := table.CommitRound()
	if reason, _ := scoring.ReasonOf(err); reason != scoring.ReasonWinnerRequired {
		t.Fatalf("commit without a live winner: err = %v", err)
	}
	if table.RoundCount() != 1 {
		t.Errorf("rejected commit appended a round")
	}
}

func TestPendingWinnerEliminatedByEdit(t *testing.T) {
	table, ids := newTestTable(t, 2, "A", "B", "C")
	commit(t, table, ids, Won, Fold, Fold)

	table.SetPendingAction(ids[1], Won)
	table.EditHistoryEntry(ids[1], 0, Lost)
	if !table.Out(ids[1]) {
		t.Fatalf("B should be out after the edit")
	}

	if err := table.CommitRound(); !errors.Is(err, scoring.ErrValidation) {
		t.Fatalf("stale pending won must not count, err = %v", err)
	}

	table.SetPendingAction(ids[2], Won)
	if err := table.CommitRound(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got := table.Players()[1].History; !reflect.DeepEqual(got, []Action{Lost, None}) {
		t.Errorf("out player history = %v, want [lost none]", got)
	}
	assertLockStep(t, table)
	assertFold(t, table)
}

// TestRandomOperationsKeepInvariants drives the table with a seeded mix of
// operations and checks lock-step histories and the points fold after each.
func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	table, _ := newTestTable(t, 6, "A", "B", "C")
	actions := []Action{Won, Fold, Lost}

	pick := func() string {
		players := table.Players()
		if len(players) == 0 {
			return ""
		}
		return players[rng.IntN(len(players))].ID
	}

	for step := 0; step < 500; step++ {
		switch rng.IntN(8) {
		case 0, 1, 2:
			table.SetPendingAction(pick(), actions[rng.IntN(len(actions))])
		case 3:
			before := table.Players()
			if err := table.CommitRound(); err != nil {
				if !reflect.DeepEqual(before, table.Players()) {
					t.Fatalf("step %d: rejected commit mutated the table", step)
				}
			}
		case 4:
			table.EditHistoryEntry(pick(), rng.IntN(table.RoundCount()+1), actions[rng.IntN(len(actions))])
		case 5:
			table.DeleteRound(rng.IntN(table.RoundCount() + 1))
		case 6:
			if len(table.Players()) < 6 {
				table.AddPlayer("")
			} else {
				table.RemovePlayer(pick())
			}
		case 7:
			table.SetStartingPoints(1 + rng.IntN(10))
		}
		assertLockStep(t, table)
		assertFold(t, table)
	}
}

func TestCommitWithNobodyAlive(t *testing.T) {
	table, ids := newTestTable(t, 1, "A", "B")
	commit(t, table, ids, Lost, Won)
	table.EditHistoryEntry(ids[1], 0, Lost)

	if err := table.CommitRound(); err != nil {
		t.Fatalf("commit with nobody alive should pass, got %v", err)
	}
	assertLockStep(t, table)
}

func TestEditHistoryEntry(t *testing.T) {
	table, ids := newTestTable(t, 10, "A", "B")
	commit(t, table, ids, Won, Lost)

	table.EditHistoryEntry(ids[1], 0, Fold)
	if got := table.CurrentPoints(ids[1]); got != 9 {
		t.Errorf("points = %d, want 9", got)
	}

	table.EditHistoryEntry(ids[1], 0, Fold)
	if got := table.Players()[1].History[0]; got != None {
		t.Errorf("second select should clear, got %q", got)
	}

	table.EditHistoryEntry(ids[1], 5, Lost)
	table.EditHistoryEntry("missing", 0, Lost)
	assertLockStep(t, table)
	assertFold(t, table)
}

func TestCheckRound(t *testing.T) {
	table, ids := newTestTable(t, 10, "A", "B")
	commit(t, table, ids, Won, Lost)

	if err := table.CheckRound(0); err != nil {
		t.Fatalf("round with winner: %v", err)
	}
	table.EditHistoryEntry(ids[0], 0, Won)
	if err := table.CheckRound(0); !errors.Is(err, scoring.ErrValidation) {
		t.Errorf("round without winner: err = %v", err)
	}
}

func TestDeleteRoundShifts(t *testing.T) {
	table, ids := newTestTable(t, 20, "A", "B", "C")
	rounds := [][]Action{
		{Won, Fold, Lost},
		{Lost, Won, Fold},
		{Fold, Lost, Won},
		{Won, None, Lost},
	}
	for _, r := range rounds {
		commit(t, table, ids, r...)
	}

	table.DeleteRound(1)

	if table.RoundCount() != 3 {
		t.Fatalf("rounds = %d, want 3", table.RoundCount())
	}
	for i, p := range table.Players() {
		if p.History[1] != rounds[2][i] {
			t.Errorf("player %d round 1 = %q, want %q", i, p.History[1], rounds[2][i])
		}
	}
	assertLockStep(t, table)
	assertFold(t, table)

	table.DeleteRound(7)
	if table.RoundCount() != 3 {
		t.Errorf("out-of-range delete should be a no-op")
	}
}

func TestAddPlayerBackfillsLost(t *testing.T) {
	table, ids := newTestTable(t, 10, "A", "B")
	commit(t, table, ids, Won, Fold)
	commit(t, table, ids, Won, Fold)

	p := table.AddPlayer("")

	if p.Name != "JOGADOR 3" {
		t.Errorf("name = %q", p.Name)
	}
	if !reflect.DeepEqual(p.History, []Action{Lost, Lost}) {
		t.Errorf("history = %v", p.History)
	}
	if got := table.CurrentPoints(p.ID); got != 6 {
		t.Errorf("points = %d, want 6", got)
	}
	assertLockStep(t, table)
}

func TestRemovePlayer(t *testing.T) {
	table, ids := newTestTable(t, 10, "A", "B", "C")
	commit(t, table, ids, Won, Fold, Lost)

	table.RemovePlayer(ids[1])
	table.RemovePlayer("missing")

	players := table.Players()
	if len(players) != 2 || players[0].ID != ids[0] || players[1].ID != ids[2] {
		t.Fatalf("roster = %+v", players)
	}
	assertLockStep(t, table)
}

func TestRenameAndReset(t *testing.T) {
	table, ids := newTestTable(t, 10, "A", "B")
	commit(t, table, ids, Won, Lost)
	table.SetPendingAction(ids[0], Won)

	table.RenamePlayer(ids[0], "Carolina Ferreira")
	table.RenamePlayer(ids[1], "")
	table.Reset()

	players := table.Players()
	if players[0].Name != "Carolina Fer" || players[1].Name != "B" {
		t.Errorf("names = %q, %q", players[0].Name, players[1].Name)
	}
	if table.RoundCount() != 0 || players[0].Pending != None {
		t.Errorf("reset should clear rounds and pending")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	table, ids := newTestTable(t, 7, "A", "B")
	commit(t, table, ids, Won, Fold)
	table.SetPendingAction(ids[1], Lost)

	data, err := json.Marshal(table.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored := Restore(s, Config{})

	if restored.StartingPoints() != 7 {
		t.Errorf("starting points = %d", restored.StartingPoints())
	}
	if !reflect.DeepEqual(restored.Players(), table.Players()) {
		t.Errorf("players = %+v, want %+v", restored.Players(), table.Players())
	}
}

func TestRestoreLegacySnapshot(t *testing.T) {
	raw := `{"players":[
		{"id":"1","name":"JOGADOR 1","history":["won",null,"lost"],"currentAction":null},
		{"id":"1","name":"","history":["fold"],"currentAction":"won"}
	]}`
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	table := Restore(s, Config{NameFormat: "JOGADOR %d"})

	if table.StartingPoints() != DefaultStartingPoints {
		t.Errorf("missing initialPoints should default")
	}
	players := table.Players()
	if players[0].ID == players[1].ID {
		t.Errorf("duplicate ids must be reassigned")
	}
	if players[1].Name != "JOGADOR 2" {
		t.Errorf("name = %q", players[1].Name)
	}
	if !reflect.DeepEqual(players[1].History, []Action{Fold, None, None}) {
		t.Errorf("history = %v", players[1].History)
	}
	assertLockStep(t, table)
}

func TestUnknownActionRejectedOnDecode(t *testing.T) {
	var a Action
	if err := json.Unmarshal([]byte(`"bluff"`), &a); err == nil {
		t.Errorf("expected error for unknown action")
	}
}
