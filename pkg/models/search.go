package models

// IterationMode selects what drives the per-request iteration for a session
type IterationMode string

const (
	// IterateByGame builds one request per game pk
	IterateByGame IterationMode = "games"
	// IterateByDate builds one request per calendar day
	IterateByDate IterationMode = "dates"
)

// FilterSpec is the validated, normalized parameter set for one search session.
// Every non-date field is a slice even when the caller supplied a scalar.
// Immutable once built.
type FilterSpec struct {
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD, defaulted to yesterday when absent
	GamePKs      []int
	BatterIDs    []int
	PitcherIDs   []int
	Teams        []string
	PitchTypes   []string
	Events       []string
	Descriptions []string
}

// IterationPlan is the derived request schedule: one unit per outbound URL.
// Units are game pks (decimal strings) in game mode, YYYY-MM-DD dates in
// ascending order in date mode.
type IterationPlan struct {
	Mode  IterationMode
	Units []string
}

// SessionState tracks a search session through the pipeline
type SessionState string

const (
	StateIdle       SessionState = "idle"
	StateValidated  SessionState = "validated"
	StatePlanned    SessionState = "planned"
	StateFetching   SessionState = "fetching"
	StateAssembling SessionState = "assembling"
	StateDone       SessionState = "done"
	StateFailed     SessionState = "failed"
)
