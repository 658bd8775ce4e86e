package analysis

import (
	"math"

	"github.com/XavierBriggs/Argus/pkg/frame"
)

// NamePitchMovement converts the upstream pfx movement vectors (feet,
// catcher's view) into break columns in inches
const NamePitchMovement = "pitch_movement"

func init() {
	mustRegister(NamePitchMovement, PitchMovement)
}

// PitchMovement appends horizontal_break, vertical_break, total_break and
// total_break_abs
func PitchMovement(t *frame.Table) error {
	cols := []string{"horizontal_break", "vertical_break", "total_break", "total_break_abs"}
	appendColumns(t, cols, func(row frame.Row) ([]float64, bool) {
		pfxX, okX := frame.Float(row, "pfx_x")
		pfxZ, okZ := frame.Float(row, "pfx_z")
		if !okX || !okZ {
			return nil, false
		}

		horizontal := pfxX * -12.00
		vertical := pfxZ * 12.00
		total := horizontal + vertical

		return []float64{horizontal, vertical, total, math.Abs(total)}, true
	})
	return nil
}
