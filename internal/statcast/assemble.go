package statcast

import (
	"fmt"
	"strings"

	"github.com/XavierBriggs/Argus/pkg/frame"
)

// PitchIDColumn is the composite row identifier, always the first column of
// the assembled dataset
const PitchIDColumn = "pitch_id"

// sortKeys is the load-bearing row order: consumers assume monotonic pitch
// sequencing within a game
var sortKeys = []string{"game_pk", "at_bat_number", "pitch_number"}

// fillNAColumns are the coordinate/strike-zone columns whose nulls become 0
// after assembly. Callers must not assume these are true zeros vs missing
// data sentinels.
var fillNAColumns = []string{"plate_x", "plate_z", "sz_bot", "sz_top"}

// assemble parses and normalizes every raw payload, then concatenates them
// into the final dataset: sorted by (game_pk, at_bat_number, pitch_number),
// keyed by pitch_id, with zone-coordinate nulls zero-filled.
//
// A nil table with a nil error is the benign no-data outcome. A payload
// carrying an "error" column fails the whole session with upstream's message.
func assemble(payloads []string) (*frame.Table, error) {
	var parts []*frame.Table
	for _, payload := range payloads {
		t, err := frame.ParseCSV(payload)
		if err != nil {
			return nil, fmt.Errorf("parse response: %w", err)
		}
		if err := frame.Normalize(t); err != nil {
			return nil, fmt.Errorf("normalize response: %w", err)
		}
		if t.Empty() {
			continue
		}
		if t.HasColumn("error") {
			return nil, &UpstreamQueryError{Message: frame.FormatCell(t.Row(0)["error"])}
		}
		parts = append(parts, t)
	}

	if len(parts) == 0 {
		return nil, nil
	}

	combined := frame.Concat(parts...)
	combined.SortBy(sortKeys...)

	for _, row := range combined.Rows() {
		row[PitchIDColumn] = pitchID(row)
	}
	combined.AddColumn(PitchIDColumn)
	combined.MoveToFront(PitchIDColumn)

	combined.FillNull(float64(0), fillNAColumns...)

	return combined, nil
}

// pitchID joins the sort-key values with "|". A missing key contributes an
// empty segment; consumers joining on pitch_id should treat such rows as
// unkeyed.
func pitchID(row frame.Row) string {
	segs := make([]string, len(sortKeys))
	for i, k := range sortKeys {
		segs[i] = frame.FormatCell(row[k])
	}
	return strings.Join(segs, "|")
}
