package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/XavierBriggs/Argus/adapters/savant"
	"github.com/XavierBriggs/Argus/adapters/statsapi"
	"github.com/XavierBriggs/Argus/internal/cache"
	"github.com/XavierBriggs/Argus/internal/statcast"
	"github.com/XavierBriggs/Argus/internal/writer"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	// Load configuration from .env (if present) and environment
	_ = godotenv.Load()
	config := loadConfig()

	// Optional Postgres connection for pitch persistence
	var db *sql.DB
	if config.PostgresDSN != "" {
		var err error
		db, err = sql.Open("postgres", config.PostgresDSN)
		if err != nil {
			fmt.Printf("failed to connect to Postgres: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			fmt.Printf("failed to ping Postgres: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✓ Connected to Postgres")
	}

	// Optional Redis connection for response caching
	var sessionOpts []statcast.Option
	if config.RedisURL != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     config.RedisURL,
			Password: config.RedisPassword,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			fmt.Printf("failed to connect to Redis: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✓ Connected to Redis")
		sessionOpts = append(sessionOpts, statcast.WithCache(cache.New(redisClient, config.CacheTTL)))
	}

	params, err := buildParams(ctx, config)
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		os.Exit(1)
	}

	sessionOpts = append(sessionOpts,
		statcast.WithWorkers(config.Workers),
		statcast.WithReporter(&consoleReporter{}),
	)

	session := statcast.NewSession(savant.NewClient(), sessionOpts...)

	if err := session.Search(ctx, params); err != nil {
		fmt.Printf("✗ Search failed: %v\n", err)
		os.Exit(1)
	}

	if session.NoData() {
		fmt.Println("✓ Search complete - no data for the requested window")
		return
	}

	table := session.Table()
	fmt.Printf("✓ Search complete - %d row(s), %d column(s)\n", table.Len(), len(table.Columns()))

	for _, name := range config.Transforms {
		if err := session.Apply(name); err != nil {
			fmt.Printf("✗ Transform %s failed: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Applied transform %s\n", name)
	}

	if db != nil {
		written, err := writer.NewWriter(db).WritePitches(ctx, session.ID(), table)
		if err != nil {
			fmt.Printf("✗ Persist failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Persisted %d pitch row(s)\n", written)
	}
}

// consoleReporter prints coarse fetch progress
type consoleReporter struct{}

func (r *consoleReporter) OnFetchStart(sessionID string, total int) {
	fmt.Printf("[fetch] session %s: %d request(s)\n", sessionID, total)
}

func (r *consoleReporter) OnProgress(sessionID string, completed, total int) {
	fmt.Printf("[fetch] %d/%d\n", completed, total)
}

func (r *consoleReporter) OnFetchDone(sessionID string) {}

// Config holds Argus configuration
type Config struct {
	PostgresDSN   string
	RedisURL      string
	RedisPassword string
	CacheTTL      time.Duration
	Workers       int

	StartDate    string
	EndDate      string
	GamePKs      []int
	PitcherIDs   []int
	BatterIDs    []int
	PitchTypes   []string
	Events       []string
	Descriptions []string
	Teams        []string

	// Optional StatsAPI narrowing: resolve the date window to game pks for
	// one team, optionally only games saved by one pitcher
	TeamID       int
	SavePitcher  int
	Transforms   []string
}

// loadConfig loads configuration from environment variables
func loadConfig() Config {
	cacheTTL := 12 * time.Hour
	if ttlStr := os.Getenv("ARGUS_CACHE_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			cacheTTL = parsed
		} else {
			fmt.Printf("⚠ Invalid ARGUS_CACHE_TTL '%s', using default 12h\n", ttlStr)
		}
	}

	return Config{
		PostgresDSN:   os.Getenv("ARGUS_DSN"),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      cacheTTL,
		Workers:       intEnv("ARGUS_WORKERS", 16),
		StartDate:     os.Getenv("ARGUS_START_DATE"),
		EndDate:       os.Getenv("ARGUS_END_DATE"),
		GamePKs:       intListEnv("ARGUS_GAME_PKS"),
		PitcherIDs:    intListEnv("ARGUS_PITCHER_IDS"),
		BatterIDs:     intListEnv("ARGUS_BATTER_IDS"),
		PitchTypes:    listEnv("ARGUS_PITCH_TYPES"),
		Events:        listEnv("ARGUS_EVENTS"),
		Descriptions:  listEnv("ARGUS_DESCRIPTIONS"),
		Teams:         listEnv("ARGUS_TEAMS"),
		TeamID:        intEnv("ARGUS_TEAM_ID", 0),
		SavePitcher:   intEnv("ARGUS_SAVE_PITCHER", 0),
		Transforms:    listEnv("ARGUS_TRANSFORMS"),
	}
}

// buildParams assembles the search parameter bag, resolving a team's
// schedule into game pks when requested
func buildParams(ctx context.Context, config Config) (statcast.SearchParams, error) {
	params := statcast.SearchParams{}

	gamePKs := config.GamePKs
	if config.TeamID > 0 && len(gamePKs) == 0 {
		if config.StartDate == "" || config.EndDate == "" {
			return nil, fmt.Errorf("ARGUS_TEAM_ID requires ARGUS_START_DATE and ARGUS_END_DATE")
		}

		client := statsapi.NewClient()
		games, err := client.Schedule(ctx, config.StartDate, config.EndDate, config.TeamID)
		if err != nil {
			return nil, fmt.Errorf("resolve schedule: %w", err)
		}
		fmt.Printf("✓ Schedule: %d game(s) for team %d\n", len(games), config.TeamID)

		for _, g := range games {
			if config.SavePitcher > 0 {
				feed, err := client.GameFeed(ctx, g.GamePK)
				if err != nil {
					return nil, fmt.Errorf("game feed %d: %w", g.GamePK, err)
				}
				if feed.LiveData.Decisions.Save.ID != config.SavePitcher {
					continue
				}
			}
			gamePKs = append(gamePKs, g.GamePK)
		}
		fmt.Printf("✓ Resolved %d game pk(s)\n", len(gamePKs))
	}

	if len(gamePKs) > 0 {
		params["game_pks"] = gamePKs
	}
	if config.StartDate != "" && len(gamePKs) == 0 {
		params["start_date"] = config.StartDate
		if config.EndDate != "" {
			params["end_date"] = config.EndDate
		}
	}
	if len(config.PitcherIDs) > 0 {
		params["pitcher_ids"] = config.PitcherIDs
	}
	if len(config.BatterIDs) > 0 {
		params["batter_ids"] = config.BatterIDs
	}
	if len(config.PitchTypes) > 0 {
		params["pitch_types"] = config.PitchTypes
	}
	if len(config.Events) > 0 {
		params["events"] = config.Events
	}
	if len(config.Descriptions) > 0 {
		params["descriptions"] = config.Descriptions
	}
	if len(config.Teams) > 0 {
		params["teams"] = config.Teams
	}

	return params, nil
}

// listEnv parses a comma-separated environment variable
func listEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// intListEnv parses a comma-separated list of integers
func intListEnv(key string) []int {
	var out []int
	for _, s := range listEnv(key) {
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Printf("⚠ Ignoring non-integer value '%s' in %s\n", s, key)
			continue
		}
		out = append(out, n)
	}
	return out
}

// intEnv gets an integer environment variable with a default fallback
func intEnv(key string, defaultValue int) int {
	if raw := os.Getenv(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
		fmt.Printf("⚠ Invalid %s '%s', using default %d\n", key, raw, defaultValue)
	}
	return defaultValue
}
