package analysis_test

import (
	"math"
	"testing"

	"github.com/XavierBriggs/Argus/internal/analysis"
	"github.com/XavierBriggs/Argus/pkg/frame"
)

func approx(t *testing.T, row frame.Row, col string, want float64) {
	t.Helper()
	got, ok := row[col].(float64)
	if !ok {
		t.Fatalf("expected float64 in %s, got %v", col, row[col])
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", col, want, got)
	}
}

func TestApply_UnknownTransform(t *testing.T) {
	if err := analysis.Apply("nope", frame.New()); err == nil {
		t.Errorf("expected error for unknown transform")
	}
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	if err := analysis.Register(analysis.NameDeltaWinExp, analysis.DeltaWinExp); err == nil {
		t.Errorf("expected duplicate registration to fail")
	}
}

func TestNames_ListsBuiltins(t *testing.T) {
	names := analysis.Names()
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{analysis.NameDeltaWinExp, analysis.NamePitchMovement, analysis.NameUmpireCalls} {
		if !seen[want] {
			t.Errorf("expected %s registered, have %v", want, names)
		}
	}
}

func TestDeltaWinExp(t *testing.T) {
	table := frame.FromRows([]string{"delta_home_win_exp", "inning_topbot"}, []frame.Row{
		{"delta_home_win_exp": 0.05, "inning_topbot": "Bot"},
		{"delta_home_win_exp": 0.05, "inning_topbot": "Top"},
		{"delta_home_win_exp": nil, "inning_topbot": "Top"},
	})

	if err := analysis.DeltaWinExp(table); err != nil {
		t.Fatalf("DeltaWinExp failed: %v", err)
	}

	// Bottom half: batting team is the home team
	approx(t, table.Row(0), "batter_delta_win_exp", 0.05)
	approx(t, table.Row(0), "pitcher_delta_win_exp", -0.05)

	approx(t, table.Row(1), "batter_delta_win_exp", -0.05)
	approx(t, table.Row(1), "pitcher_delta_win_exp", 0.05)

	// Missing input falls back to 0.00
	approx(t, table.Row(2), "batter_delta_win_exp", 0)
	approx(t, table.Row(2), "pitcher_delta_win_exp", 0)
}

func TestPitchMovement(t *testing.T) {
	table := frame.FromRows([]string{"pfx_x", "pfx_z"}, []frame.Row{
		{"pfx_x": -0.55, "pfx_z": 1.21},
	})

	if err := analysis.PitchMovement(table); err != nil {
		t.Fatalf("PitchMovement failed: %v", err)
	}

	row := table.Row(0)
	approx(t, row, "horizontal_break", 6.6)
	approx(t, row, "vertical_break", 14.52)
	approx(t, row, "total_break", 21.12)
	approx(t, row, "total_break_abs", 21.12)
}

func TestUmpireCalls(t *testing.T) {
	// Zone: 1.5 to 3.5 vertically, plate half width 17/2/12 ft, ball radius 0.12 ft
	cols := []string{"plate_x", "plate_z", "sz_bot", "sz_top", "description"}
	zone := func(x, z float64, desc string) frame.Row {
		return frame.Row{"plate_x": x, "plate_z": z, "sz_bot": 1.5, "sz_top": 3.5, "description": desc}
	}
	table := frame.FromRows(cols, []frame.Row{
		zone(1.0, 2.5, "called_strike"), // wide of the widened zone
		zone(0.0, 2.5, "called_strike"), // correct call
		zone(0.0, 2.5, "ball"),          // down the middle
		zone(2.0, 2.5, "ball"),          // correct call
		zone(0.0, 2.5, "foul"),          // not a called pitch
		{"plate_x": nil, "plate_z": 2.5, "sz_bot": 1.5, "sz_top": 3.5, "description": "ball"},
	})

	if err := analysis.UmpireCalls(table); err != nil {
		t.Fatalf("UmpireCalls failed: %v", err)
	}

	halfWidth := 17.0 / 2.0 / 12.0

	wideStrike := (1.0 - (halfWidth + 0.12)) * 12.0
	approx(t, table.Row(0), "horizontal_miss", wideStrike)
	approx(t, table.Row(0), "vertical_miss", 0)
	approx(t, table.Row(0), "total_miss", wideStrike)

	approx(t, table.Row(1), "total_miss", 0)

	// Center-cut ball: horizontal depth is the binding edge
	centerBall := (halfWidth - 0.12) * 12.0
	approx(t, table.Row(2), "horizontal_miss", centerBall)
	approx(t, table.Row(2), "vertical_miss", (2.5-(1.5+0.12))*12.0)
	approx(t, table.Row(2), "total_miss", centerBall)

	approx(t, table.Row(3), "total_miss", 0)
	approx(t, table.Row(4), "total_miss", 0)
	approx(t, table.Row(5), "total_miss", 0)
}
