package statcast

import (
	"errors"
	"testing"

	"github.com/XavierBriggs/Argus/pkg/models"
)

func TestParseParams_UnknownKeyRejected(t *testing.T) {
	_, err := ParseParams(SearchParams{
		"start_date": "2024-06-01",
		"fastballs":  true,
	})

	var badParam *InvalidParameterError
	if !errors.As(err, &badParam) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
	if len(badParam.Keys) != 1 || badParam.Keys[0] != "fastballs" {
		t.Errorf("expected offending key reported, got %v", badParam.Keys)
	}
}

func TestParseParams_ScalarsCoercedToLists(t *testing.T) {
	spec, err := ParseParams(SearchParams{
		"game_pks": 717674,
		"teams":    "SF",
	})
	if err != nil {
		t.Fatalf("ParseParams failed: %v", err)
	}

	if len(spec.GamePKs) != 1 || spec.GamePKs[0] != 717674 {
		t.Errorf("expected game pk scalar coerced, got %v", spec.GamePKs)
	}
	if len(spec.Teams) != 1 || spec.Teams[0] != "SF" {
		t.Errorf("expected team scalar coerced, got %v", spec.Teams)
	}
}

func TestParseParams_EndDateDefaultsToYesterday(t *testing.T) {
	orig := yesterday
	yesterday = func() string { return "2024-06-14" }
	defer func() { yesterday = orig }()

	spec, err := ParseParams(SearchParams{"start_date": "2024-06-01"})
	if err != nil {
		t.Fatalf("ParseParams failed: %v", err)
	}
	if spec.EndDate != "2024-06-14" {
		t.Errorf("expected end date defaulted to yesterday, got %s", spec.EndDate)
	}
}

func TestParseParams_ExplicitEndDateKept(t *testing.T) {
	spec, err := ParseParams(SearchParams{
		"start_date": "2024-06-01",
		"end_date":   "2024-06-05",
	})
	if err != nil {
		t.Fatalf("ParseParams failed: %v", err)
	}
	if spec.EndDate != "2024-06-05" {
		t.Errorf("expected explicit end date kept, got %s", spec.EndDate)
	}
}

func TestBuildPlan_GamesWinOverDates(t *testing.T) {
	spec := &models.FilterSpec{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
		GamePKs:   []int{717674, 716381},
	}

	plan, err := BuildPlan(spec)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if plan.Mode != models.IterateByGame {
		t.Errorf("expected game iteration to win, got %s", plan.Mode)
	}
	if len(plan.Units) != 2 || plan.Units[0] != "717674" || plan.Units[1] != "716381" {
		t.Errorf("unexpected units %v", plan.Units)
	}
}

func TestBuildPlan_DateRange(t *testing.T) {
	spec := &models.FilterSpec{StartDate: "2024-06-01", EndDate: "2024-06-03"}

	plan, err := BuildPlan(spec)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if plan.Mode != models.IterateByDate {
		t.Errorf("expected date iteration, got %s", plan.Mode)
	}
	want := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	if len(plan.Units) != len(want) {
		t.Fatalf("expected %d units, got %d", len(want), len(plan.Units))
	}
	for i := range want {
		if plan.Units[i] != want[i] {
			t.Errorf("unit %d: expected %s, got %s", i, want[i], plan.Units[i])
		}
	}
}

func TestBuildPlan_MissingIterationKey(t *testing.T) {
	_, err := BuildPlan(&models.FilterSpec{Teams: []string{"SF"}})
	if !errors.Is(err, ErrMissingIterationKey) {
		t.Errorf("expected ErrMissingIterationKey, got %v", err)
	}
}
