package analysis

import "github.com/XavierBriggs/Argus/pkg/frame"

// NameDeltaWinExp splits the home-team win-expectancy swing of each pitch
// into batter and pitcher perspectives
const NameDeltaWinExp = "delta_win_exp"

func init() {
	mustRegister(NameDeltaWinExp, DeltaWinExp)
}

// DeltaWinExp appends batter_delta_win_exp and pitcher_delta_win_exp. In the
// bottom of an inning the batting team is the home team, so the batter gets
// the home delta as-is and the pitcher its negation; top of the inning is the
// mirror image.
func DeltaWinExp(t *frame.Table) error {
	appendColumns(t, []string{"batter_delta_win_exp", "pitcher_delta_win_exp"}, func(row frame.Row) ([]float64, bool) {
		delta, ok := frame.Float(row, "delta_home_win_exp")
		if !ok {
			return nil, false
		}

		topBot, _ := frame.String(row, "inning_topbot")
		if topBot == "Bot" {
			return []float64{delta, -delta}, true
		}
		return []float64{-delta, delta}, true
	})
	return nil
}
