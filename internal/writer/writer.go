// Package writer persists assembled pitch datasets to Postgres.
package writer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/XavierBriggs/Argus/pkg/frame"
	"github.com/lib/pq"
)

const defaultBatchSize = 500

// Writer batch-inserts pitch rows keyed by pitch_id. Already-seen pitches
// are skipped so re-running a session over the same window is idempotent.
type Writer struct {
	db        *sql.DB
	batchSize int
}

// NewWriter creates a pitch writer
func NewWriter(db *sql.DB) *Writer {
	return &Writer{
		db:        db,
		batchSize: defaultBatchSize,
	}
}

// WritePitches persists a dataset in batches, each inside its own
// transaction. Returns the number of rows submitted.
func (w *Writer) WritePitches(ctx context.Context, sessionID string, t *frame.Table) (int, error) {
	if t == nil || t.Empty() {
		return 0, nil
	}

	rows := t.Rows()
	for start := 0; start < len(rows); start += w.batchSize {
		end := start + w.batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := w.insertBatch(ctx, rows[start:end]); err != nil {
			return 0, fmt.Errorf("insert batch %d-%d: %w", start, end, err)
		}
	}

	fmt.Printf("[writer] session %s: wrote %d pitch row(s)\n", sessionID, len(rows))
	return len(rows), nil
}

// insertBatch inserts one slice of rows with UNNEST arrays inside a
// transaction
func (w *Writer) insertBatch(ctx context.Context, rows []frame.Row) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO pitches (
			pitch_id, game_pk, at_bat_number, pitch_number, game_date,
			pitch_type, release_speed, events, description,
			batter, pitcher, inning_topbot,
			plate_x, plate_z, sz_bot, sz_top,
			pfx_x, pfx_z, delta_home_win_exp
		)
		SELECT * FROM UNNEST(
			$1::text[], $2::bigint[], $3::int[], $4::int[], $5::timestamptz[],
			$6::text[], $7::decimal[], $8::text[], $9::text[],
			$10::bigint[], $11::bigint[], $12::text[],
			$13::decimal[], $14::decimal[], $15::decimal[], $16::decimal[],
			$17::decimal[], $18::decimal[], $19::decimal[]
		)
		ON CONFLICT (pitch_id) DO NOTHING
	`

	n := len(rows)
	pitchIDs := make([]string, n)
	gamePKs := make([]*int64, n)
	atBats := make([]*int64, n)
	pitchNums := make([]*int64, n)
	gameDates := make([]*time.Time, n)
	pitchTypes := make([]*string, n)
	releaseSpeeds := make([]*float64, n)
	events := make([]*string, n)
	descriptions := make([]*string, n)
	batters := make([]*int64, n)
	pitchers := make([]*int64, n)
	topBots := make([]*string, n)
	plateXs := make([]*float64, n)
	plateZs := make([]*float64, n)
	szBots := make([]*float64, n)
	szTops := make([]*float64, n)
	pfxXs := make([]*float64, n)
	pfxZs := make([]*float64, n)
	deltaWinExps := make([]*float64, n)

	for i, row := range rows {
		pitchIDs[i] = frame.FormatCell(row["pitch_id"])
		gamePKs[i] = intCell(row, "game_pk")
		atBats[i] = intCell(row, "at_bat_number")
		pitchNums[i] = intCell(row, "pitch_number")
		gameDates[i] = timeCell(row, "game_date")
		pitchTypes[i] = stringCell(row, "pitch_type")
		releaseSpeeds[i] = floatCell(row, "release_speed")
		events[i] = stringCell(row, "events")
		descriptions[i] = stringCell(row, "description")
		batters[i] = intCell(row, "batter")
		pitchers[i] = intCell(row, "pitcher")
		topBots[i] = stringCell(row, "inning_topbot")
		plateXs[i] = floatCell(row, "plate_x")
		plateZs[i] = floatCell(row, "plate_z")
		szBots[i] = floatCell(row, "sz_bot")
		szTops[i] = floatCell(row, "sz_top")
		pfxXs[i] = floatCell(row, "pfx_x")
		pfxZs[i] = floatCell(row, "pfx_z")
		deltaWinExps[i] = floatCell(row, "delta_home_win_exp")
	}

	_, err = tx.ExecContext(ctx, query,
		pq.Array(pitchIDs), pq.Array(gamePKs), pq.Array(atBats), pq.Array(pitchNums), pq.Array(gameDates),
		pq.Array(pitchTypes), pq.Array(releaseSpeeds), pq.Array(events), pq.Array(descriptions),
		pq.Array(batters), pq.Array(pitchers), pq.Array(topBots),
		pq.Array(plateXs), pq.Array(plateZs), pq.Array(szBots), pq.Array(szTops),
		pq.Array(pfxXs), pq.Array(pfxZs), pq.Array(deltaWinExps),
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func intCell(row frame.Row, col string) *int64 {
	switch v := row[col].(type) {
	case int64:
		return &v
	case float64:
		n := int64(v)
		return &n
	}
	return nil
}

func floatCell(row frame.Row, col string) *float64 {
	if f, ok := frame.Float(row, col); ok {
		return &f
	}
	return nil
}

func stringCell(row frame.Row, col string) *string {
	if s, ok := frame.String(row, col); ok {
		return &s
	}
	return nil
}

func timeCell(row frame.Row, col string) *time.Time {
	if t, ok := row[col].(time.Time); ok {
		return &t
	}
	return nil
}
