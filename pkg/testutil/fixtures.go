// Package testutil provides shared fixtures for pipeline tests: canned
// search payloads, a scripted pitch source and a capturing reporter.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/XavierBriggs/Argus/pkg/contracts"
	"github.com/XavierBriggs/Argus/pkg/models"
)

// SearchCSVHeader is the column set canned payloads carry
const SearchCSVHeader = "pitch_type,game_date,release_speed,game_pk,at_bat_number,pitch_number,batter,pitcher,events,description,inning_topbot,plate_x,plate_z,sz_bot,sz_top,pfx_x,pfx_z,delta_home_win_exp"

// SearchCSV builds a statcast-shaped payload with pitches 1..numPitches for
// a single at-bat of one game
func SearchCSV(gamePK, atBat, numPitches int) string {
	var b strings.Builder
	b.WriteString(SearchCSVHeader)
	b.WriteString("\n")
	for p := 1; p <= numPitches; p++ {
		fmt.Fprintf(&b,
			"FF,2024-06-0%d,95.%d,%d,%d,%d,666808,534606,,called_strike,Bot,0.12,2.5,1.57,3.41,-0.55,1.21,0.032\n",
			(p%9)+1, p, gamePK, atBat, p)
	}
	return b.String()
}

// ErrorCSV builds a payload carrying an upstream query failure
func ErrorCSV(message string) string {
	return "error\n" + message + "\n"
}

// FakeSource is a scripted PitchSource. URLs are built the same way the real
// adapter reports them, and fetches are answered from the Payloads map.
type FakeSource struct {
	// Payloads maps iteration unit (game pk or date string) to CSV body
	Payloads map[string]string
	// Errs maps iteration unit to a fetch error
	Errs map[string]error

	mu      sync.Mutex
	fetched []string
}

// Ensure FakeSource implements PitchSource
var _ contracts.PitchSource = (*FakeSource)(nil)

// SearchURL encodes mode and unit so FetchCSV can answer from the script
func (f *FakeSource) SearchURL(spec *models.FilterSpec, mode models.IterationMode, unit string) string {
	return fmt.Sprintf("fake://search/%s/%s", mode, unit)
}

// FetchCSV answers from the scripted payloads
func (f *FakeSource) FetchCSV(ctx context.Context, url string) (string, error) {
	unit := url[strings.LastIndex(url, "/")+1:]

	f.mu.Lock()
	f.fetched = append(f.fetched, unit)
	f.mu.Unlock()

	if err, ok := f.Errs[unit]; ok {
		return "", err
	}
	if body, ok := f.Payloads[unit]; ok {
		return body, nil
	}
	return "", fmt.Errorf("no payload scripted for unit %s", unit)
}

// Fetched returns the units fetched so far, in completion order
func (f *FakeSource) Fetched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetched...)
}

// CaptureReporter records progress callbacks for assertions
type CaptureReporter struct {
	mu        sync.Mutex
	Started   bool
	Finished  bool
	Total     int
	Progress  []int
	SessionID string
}

// Ensure CaptureReporter implements Reporter
var _ contracts.Reporter = (*CaptureReporter)(nil)

func (r *CaptureReporter) OnFetchStart(sessionID string, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Started = true
	r.Total = total
	r.SessionID = sessionID
}

func (r *CaptureReporter) OnProgress(sessionID string, completed, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Progress = append(r.Progress, completed)
}

func (r *CaptureReporter) OnFetchDone(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Finished = true
}
