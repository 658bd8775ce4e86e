package savant_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/XavierBriggs/Argus/adapters/savant"
)

func TestFetchCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("game_pk,pitch_number\n717674,1\n"))
	}))
	defer server.Close()

	client := savant.NewClientWithBaseURL(server.URL)

	body, err := client.FetchCSV(context.Background(), server.URL+"/statcast_search/csv")
	if err != nil {
		t.Fatalf("FetchCSV failed: %v", err)
	}
	if !strings.HasPrefix(body, "game_pk,pitch_number") {
		t.Errorf("unexpected body %q", body)
	}
}

func TestFetchCSV_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := savant.NewClientWithBaseURL(server.URL)

	if _, err := client.FetchCSV(context.Background(), server.URL+"/statcast_search/csv"); err == nil {
		t.Fatalf("expected error for non-200 status")
	} else if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status code in error, got %v", err)
	}
}
