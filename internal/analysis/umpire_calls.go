package analysis

import (
	"math"

	"github.com/XavierBriggs/Argus/pkg/frame"
)

// NameUmpireCalls scores called pitches against the strike zone
const NameUmpireCalls = "umpire_calls"

const (
	// plateHalfWidthFt is half the 17in plate, in feet
	plateHalfWidthFt = 17.0 / 2.0 / 12.0
	// ballRadiusFt approximates the regulation ball radius, in feet
	ballRadiusFt = 0.12
)

func init() {
	mustRegister(NameUmpireCalls, UmpireCalls)
}

// UmpireCalls appends horizontal_miss, vertical_miss and total_miss, all in
// inches. A called strike is measured by how far it sat outside the zone
// widened by the ball radius; a called ball by how far it sat inside the zone
// shrunk by the ball radius. Correct calls and non-called pitches score 0.00.
func UmpireCalls(t *frame.Table) error {
	cols := []string{"horizontal_miss", "vertical_miss", "total_miss"}
	appendColumns(t, cols, func(row frame.Row) ([]float64, bool) {
		plateX, okX := frame.Float(row, "plate_x")
		plateZ, okZ := frame.Float(row, "plate_z")
		szBot, okB := frame.Float(row, "sz_bot")
		szTop, okT := frame.Float(row, "sz_top")
		if !okX || !okZ || !okB || !okT {
			return nil, false
		}

		desc, _ := frame.String(row, "description")
		switch desc {
		case "called_strike":
			h := missOutside(math.Abs(plateX), plateHalfWidthFt+ballRadiusFt)
			v := missOutside(plateZ-szTop, ballRadiusFt) + missOutside(szBot-plateZ, ballRadiusFt)
			return []float64{h * 12.0, v * 12.0, (h + v) * 12.0}, true
		case "ball":
			h := depthInside(math.Abs(plateX), plateHalfWidthFt-ballRadiusFt)
			vLow := depthInside(szBot+ballRadiusFt, plateZ)
			vHigh := depthInside(plateZ, szTop-ballRadiusFt)
			v := math.Min(vLow, vHigh)
			if h <= 0 || v <= 0 {
				return []float64{0, 0, 0}, true
			}
			miss := math.Min(h, v)
			return []float64{h * 12.0, v * 12.0, miss * 12.0}, true
		}
		return []float64{0, 0, 0}, true
	})
	return nil
}

// missOutside returns how far a coordinate sits beyond an edge, 0 when inside
func missOutside(pos, edge float64) float64 {
	if pos > edge {
		return pos - edge
	}
	return 0
}

// depthInside returns how far inside an edge a coordinate sits, 0 when outside
func depthInside(pos, edge float64) float64 {
	if pos < edge {
		return edge - pos
	}
	return 0
}
