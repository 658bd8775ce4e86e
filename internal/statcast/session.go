package statcast

import (
	"context"
	"fmt"

	"github.com/XavierBriggs/Argus/internal/analysis"
	"github.com/XavierBriggs/Argus/pkg/contracts"
	"github.com/XavierBriggs/Argus/pkg/frame"
	"github.com/XavierBriggs/Argus/pkg/models"
	"github.com/google/uuid"
)

// Session owns one end-to-end search: validate parameters, plan the
// iteration, build URLs, fetch concurrently, assemble the dataset. Sessions
// are single-use and not safe for concurrent use; the pipeline stages are
// observable through State.
type Session struct {
	id       string
	source   contracts.PitchSource
	cache    contracts.ResponseCache
	reporter contracts.Reporter
	workers  int

	state  models.SessionState
	spec   *models.FilterSpec
	plan   *models.IterationPlan
	urls   []string
	table  *frame.Table
	noData bool
}

// Option configures a session
type Option func(*Session)

// WithWorkers bounds the fetch pool (default 16)
func WithWorkers(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithCache attaches a response cache consulted before the network
func WithCache(c contracts.ResponseCache) Option {
	return func(s *Session) { s.cache = c }
}

// WithReporter attaches a progress reporter for the fetch phase
func WithReporter(r contracts.Reporter) Option {
	return func(s *Session) { s.reporter = r }
}

// NewSession creates an idle session over the given source
func NewSession(source contracts.PitchSource, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		source:  source,
		workers: defaultWorkers,
		state:   models.StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// State returns the current pipeline stage
func (s *Session) State() models.SessionState {
	return s.state
}

// Spec returns the validated filter, nil before validation
func (s *Session) Spec() *models.FilterSpec {
	return s.spec
}

// Plan returns the iteration plan, nil before planning
func (s *Session) Plan() *models.IterationPlan {
	return s.plan
}

// URLs returns the generated request URLs, nil before planning
func (s *Session) URLs() []string {
	return s.urls
}

// Table returns the assembled dataset, nil until done (and nil forever for a
// no-data session)
func (s *Session) Table() *frame.Table {
	return s.table
}

// NoData reports whether the session completed with nothing to assemble.
// Distinct from a dataset that filtered down to zero rows.
func (s *Session) NoData() bool {
	return s.noData
}

// Search runs the whole pipeline. Any fatal condition moves the session to
// the failed state and returns the error with no dataset; zero collected
// responses complete the session with NoData set instead.
func (s *Session) Search(ctx context.Context, params SearchParams) error {
	if s.state != models.StateIdle {
		return ErrSessionUsed
	}

	spec, err := ParseParams(params)
	if err != nil {
		return s.fail(err)
	}
	s.spec = spec
	s.state = models.StateValidated

	plan, err := BuildPlan(spec)
	if err != nil {
		return s.fail(err)
	}
	s.plan = plan
	fmt.Printf("[statcast] session %s: validated args, iterating by %s (%d unit(s))\n", s.id, plan.Mode, len(plan.Units))

	s.urls = make([]string, len(plan.Units))
	for i, unit := range plan.Units {
		s.urls[i] = s.source.SearchURL(spec, plan.Mode, unit)
	}
	s.state = models.StatePlanned

	s.state = models.StateFetching
	payloads, err := s.fetchAll(ctx, s.urls)
	if err != nil {
		return s.fail(err)
	}

	if len(payloads) == 0 {
		s.noData = true
		s.state = models.StateDone
		fmt.Printf("[statcast] session %s: no data found\n", s.id)
		return nil
	}

	s.state = models.StateAssembling
	table, err := assemble(payloads)
	if err != nil {
		return s.fail(err)
	}

	if table == nil {
		s.noData = true
	} else {
		s.table = table
		fmt.Printf("[statcast] session %s: assembled %d row(s)\n", s.id, table.Len())
	}
	s.state = models.StateDone
	return nil
}

// Apply runs a named analysis transform against the held dataset, in place.
// Only callable from the done state; a no-data session is a quiet no-op.
func (s *Session) Apply(name string) error {
	if s.state != models.StateDone {
		return ErrNotReady
	}
	if s.table == nil {
		return nil
	}
	return analysis.Apply(name, s.table)
}

// DeltaWinExp appends the batter/pitcher win-expectancy delta columns
func (s *Session) DeltaWinExp() error {
	return s.Apply(analysis.NameDeltaWinExp)
}

// PitchMovement appends the horizontal/vertical break columns
func (s *Session) PitchMovement() error {
	return s.Apply(analysis.NamePitchMovement)
}

// UmpireCalls appends the called-pitch miss-distance columns
func (s *Session) UmpireCalls() error {
	return s.Apply(analysis.NameUmpireCalls)
}

func (s *Session) fail(err error) error {
	s.state = models.StateFailed
	return err
}
