package statcast

import (
	"context"
	"testing"

	"github.com/XavierBriggs/Argus/pkg/models"
)

// scriptedSource answers every fetch with one fixed body
type scriptedSource struct {
	body string
}

func (s *scriptedSource) SearchURL(spec *models.FilterSpec, mode models.IterationMode, unit string) string {
	return "scripted://" + unit
}

func (s *scriptedSource) FetchCSV(ctx context.Context, url string) (string, error) {
	return s.body, nil
}

func TestFetchAll_ZeroURLs(t *testing.T) {
	s := NewSession(nil)

	payloads, err := s.fetchAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error for zero URLs, got %v", err)
	}
	if payloads != nil {
		t.Errorf("expected no payloads, got %v", payloads)
	}
}

func TestFetchAll_WorkerPoolCappedByURLCount(t *testing.T) {
	// A pool larger than the URL count must not deadlock on the job queue
	source := &scriptedSource{body: "a,b\n1,2\n"}
	s := NewSession(source, WithWorkers(64))

	payloads, err := s.fetchAll(context.Background(), []string{"u1", "u2"})
	if err != nil {
		t.Fatalf("fetchAll failed: %v", err)
	}
	if len(payloads) != 2 {
		t.Errorf("expected 2 payloads, got %d", len(payloads))
	}
}
