package dates_test

import (
	"testing"
	"time"

	"github.com/XavierBriggs/Argus/internal/dates"
)

func TestRange_InclusiveBothEnds(t *testing.T) {
	got, err := dates.Range("2024-06-28", "2024-07-02")
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}

	want := []string{"2024-06-28", "2024-06-29", "2024-06-30", "2024-07-01", "2024-07-02"}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRange_SingleDay(t *testing.T) {
	got, err := dates.Range("2024-06-01", "2024-06-01")
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(got) != 1 || got[0] != "2024-06-01" {
		t.Errorf("expected single day, got %v", got)
	}
}

func TestRange_EndBeforeStart(t *testing.T) {
	if _, err := dates.Range("2024-06-02", "2024-06-01"); err == nil {
		t.Errorf("expected error for inverted range")
	}
}

func TestRange_BadDate(t *testing.T) {
	if _, err := dates.Range("june 1st", "2024-06-01"); err == nil {
		t.Errorf("expected error for malformed date")
	}
}

func TestDaysAgo(t *testing.T) {
	want := time.Now().AddDate(0, 0, -1).Format(dates.Layout)
	if got := dates.DaysAgo(1); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
