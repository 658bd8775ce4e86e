package statsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/XavierBriggs/Argus/adapters/statsapi"
)

const scheduleJSON = `{
	"dates": [
		{
			"date": "2024-06-01",
			"games": [
				{
					"gamePk": 745804,
					"officialDate": "2024-06-01",
					"status": {"detailedState": "Final"},
					"teams": {
						"home": {"score": 5, "team": {"id": 158, "name": "Milwaukee Brewers"}, "isWinner": true},
						"away": {"score": 2, "team": {"id": 112, "name": "Chicago Cubs"}, "isWinner": false}
					}
				}
			]
		},
		{
			"date": "2024-06-02",
			"games": [
				{
					"gamePk": 745790,
					"officialDate": "2024-06-02",
					"status": {"detailedState": "Final"},
					"teams": {
						"home": {"score": 1, "team": {"id": 158, "name": "Milwaukee Brewers"}, "isWinner": false},
						"away": {"score": 3, "team": {"id": 112, "name": "Chicago Cubs"}, "isWinner": true}
					}
				}
			]
		}
	]
}`

const feedJSON = `{
	"gamePk": 745804,
	"gameData": {
		"status": {"detailedState": "Final"},
		"datetime": {"officialDate": "2024-06-01"}
	},
	"liveData": {
		"decisions": {
			"winner": {"id": 669203, "fullName": "Corbin Burnes"},
			"loser": {"id": 543037, "fullName": "Kyle Hendricks"},
			"save": {"id": 642770, "fullName": "Devin Williams"}
		}
	}
}`

func TestSchedule_FlattensDates(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(scheduleJSON))
	}))
	defer server.Close()

	client := statsapi.NewClientWithBaseURL(server.URL)

	games, err := client.Schedule(context.Background(), "2024-06-01", "2024-06-02", 158)
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	if len(games) != 2 {
		t.Fatalf("expected 2 games across dates, got %d", len(games))
	}
	if games[0].GamePK != 745804 || games[1].GamePK != 745790 {
		t.Errorf("expected schedule order preserved, got %d, %d", games[0].GamePK, games[1].GamePK)
	}
	if games[0].Teams.Home.Team.ID != 158 {
		t.Errorf("expected home team 158, got %d", games[0].Teams.Home.Team.ID)
	}

	wantQuery := map[string]string{
		"sportId":   "1",
		"startDate": "2024-06-01",
		"endDate":   "2024-06-02",
		"teamId":    "158",
	}
	for key, want := range wantQuery {
		if got := gotQuery.Get(key); got != want {
			t.Errorf("expected %s=%s, got %q", key, want, got)
		}
	}
}

func TestSchedule_OmitsTeamWhenZero(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"dates": []}`))
	}))
	defer server.Close()

	client := statsapi.NewClientWithBaseURL(server.URL)

	games, err := client.Schedule(context.Background(), "2024-06-01", "2024-06-01", 0)
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("expected no games, got %d", len(games))
	}
	if gotQuery.Has("teamId") {
		t.Errorf("expected teamId omitted, got %v", gotQuery)
	}
}

func TestGameFeed_ParsesDecisions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1.1/game/745804/feed/live" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(feedJSON))
	}))
	defer server.Close()

	client := statsapi.NewClientWithBaseURL(server.URL)

	feed, err := client.GameFeed(context.Background(), 745804)
	if err != nil {
		t.Fatalf("GameFeed failed: %v", err)
	}

	if feed.GamePK != 745804 {
		t.Errorf("expected gamePk 745804, got %d", feed.GamePK)
	}
	if feed.LiveData.Decisions.Save.ID != 642770 {
		t.Errorf("expected save pitcher 642770, got %d", feed.LiveData.Decisions.Save.ID)
	}
	if feed.GameData.Status.DetailedState != "Final" {
		t.Errorf("expected Final status, got %s", feed.GameData.Status.DetailedState)
	}
}

func TestGameFeed_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := statsapi.NewClientWithBaseURL(server.URL)

	if _, err := client.GameFeed(context.Background(), 1); err == nil {
		t.Errorf("expected error for 404 response")
	}
}
