package savant

import (
	"fmt"
	"strings"

	"github.com/XavierBriggs/Argus/pkg/models"
)

const searchPath = "/statcast_search/csv?all=true&type=details"

// SearchURL builds the request URL for one iteration unit. Pure string
// construction: identical inputs always yield a byte-identical URL, and
// parameter order is fixed.
//
// The team filter only applies when nothing more specific narrows the query
// already; iterating by game or filtering by batter/pitcher silently drops it
// with a diagnostic.
func (c *Client) SearchURL(spec *models.FilterSpec, mode models.IterationMode, unit string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(searchPath)

	if len(spec.PitchTypes) > 0 {
		b.WriteString("&hfPT=")
		for _, pt := range spec.PitchTypes {
			b.WriteString(strings.ToUpper(pt))
			b.WriteString("|")
		}
	}

	if len(spec.Events) > 0 {
		b.WriteString("&hfAB=")
		for _, ev := range spec.Events {
			b.WriteString(escapeTerm(ev))
			b.WriteString("|")
		}
	}

	if len(spec.Descriptions) > 0 {
		b.WriteString("&hfPR=")
		for _, d := range spec.Descriptions {
			b.WriteString(escapeTerm(d))
			b.WriteString("|")
		}
	}

	switch mode {
	case models.IterateByGame:
		b.WriteString("&game_pk=")
		b.WriteString(unit)
	case models.IterateByDate:
		// The service is asked for exactly this one day by pinning both
		// ends of its date window
		b.WriteString("&game_date_gt=")
		b.WriteString(unit)
		b.WriteString("&game_date_lt=")
		b.WriteString(unit)
	}

	for _, id := range spec.PitcherIDs {
		fmt.Fprintf(&b, "&pitchers_lookup[]=%d", id)
	}

	for _, id := range spec.BatterIDs {
		fmt.Fprintf(&b, "&batters_lookup[]=%d", id)
	}

	if len(spec.Teams) > 0 {
		if mode == models.IterateByGame || len(spec.PitcherIDs) > 0 || len(spec.BatterIDs) > 0 {
			fmt.Println("[savant] team filter passed, but game, pitcher or batter already specified - not applying team filter")
		} else {
			b.WriteString("&player_type=pitcher|batter|&hfTeam=")
			for _, team := range spec.Teams {
				b.WriteString(team)
				b.WriteString("|")
			}
		}
	}

	return b.String()
}

// escapeTerm applies the upstream convention for multi-word search terms:
// spaces become the literal escape sequence `\.\.`
func escapeTerm(s string) string {
	return strings.ReplaceAll(s, " ", `\.\.`)
}
