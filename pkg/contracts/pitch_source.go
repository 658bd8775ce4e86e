package contracts

import (
	"context"

	"github.com/XavierBriggs/Argus/pkg/models"
)

// PitchSource defines the interface for fetching pitch-level search results
// from an upstream statistics service. Keeping this stable lets sessions run
// against fakes in tests and alternative mirrors later.
type PitchSource interface {
	// SearchURL builds the request URL for one iteration unit.
	// Pure string construction - must not perform I/O and must be
	// deterministic for identical inputs.
	SearchURL(spec *models.FilterSpec, mode models.IterationMode, unit string) string

	// FetchCSV executes a single GET and returns the raw CSV body as UTF-8
	// text. Non-2xx statuses and transport failures are errors.
	FetchCSV(ctx context.Context, url string) (string, error)
}
