package statcast

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/XavierBriggs/Argus/internal/dates"
	"github.com/XavierBriggs/Argus/pkg/models"
)

// SearchParams is the caller-facing filter DSL: a small bag of recognized
// keys whose values may be scalars or slices
type SearchParams map[string]any

// The fixed recognized parameter set. Anything else is rejected before any
// network activity.
const (
	KeyStartDate    = "start_date"
	KeyEndDate      = "end_date"
	KeyGamePKs      = "game_pks"
	KeyBatterIDs    = "batter_ids"
	KeyPitcherIDs   = "pitcher_ids"
	KeyTeams        = "teams"
	KeyPitchTypes   = "pitch_types"
	KeyEvents       = "events"
	KeyDescriptions = "descriptions"
)

// yesterday is swapped out in tests
var yesterday = func() string { return dates.DaysAgo(1) }

// ParseParams validates and normalizes a parameter bag into a FilterSpec in
// one pass. Unknown keys fail with InvalidParameterError; scalar values for
// list-shaped keys are coerced to single-element slices; a start date without
// an end date defaults the end to yesterday.
func ParseParams(params SearchParams) (*models.FilterSpec, error) {
	var bad []string
	for k := range params {
		switch k {
		case KeyStartDate, KeyEndDate, KeyGamePKs, KeyBatterIDs, KeyPitcherIDs,
			KeyTeams, KeyPitchTypes, KeyEvents, KeyDescriptions:
		default:
			bad = append(bad, k)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, &InvalidParameterError{Keys: bad}
	}

	spec := &models.FilterSpec{}
	var err error

	if spec.StartDate, err = stringValue(params, KeyStartDate); err != nil {
		return nil, err
	}
	if spec.EndDate, err = stringValue(params, KeyEndDate); err != nil {
		return nil, err
	}
	if spec.GamePKs, err = intList(params, KeyGamePKs); err != nil {
		return nil, err
	}
	if spec.BatterIDs, err = intList(params, KeyBatterIDs); err != nil {
		return nil, err
	}
	if spec.PitcherIDs, err = intList(params, KeyPitcherIDs); err != nil {
		return nil, err
	}
	if spec.Teams, err = stringList(params, KeyTeams); err != nil {
		return nil, err
	}
	if spec.PitchTypes, err = stringList(params, KeyPitchTypes); err != nil {
		return nil, err
	}
	if spec.Events, err = stringList(params, KeyEvents); err != nil {
		return nil, err
	}
	if spec.Descriptions, err = stringList(params, KeyDescriptions); err != nil {
		return nil, err
	}

	if spec.StartDate != "" && spec.EndDate == "" {
		spec.EndDate = yesterday()
	}

	return spec, nil
}

// BuildPlan selects the iteration strategy: game pks always win over a date
// range; neither present fails with ErrMissingIterationKey.
func BuildPlan(spec *models.FilterSpec) (*models.IterationPlan, error) {
	if len(spec.GamePKs) > 0 {
		units := make([]string, len(spec.GamePKs))
		for i, pk := range spec.GamePKs {
			units[i] = strconv.Itoa(pk)
		}
		return &models.IterationPlan{Mode: models.IterateByGame, Units: units}, nil
	}

	if spec.StartDate != "" {
		units, err := dates.Range(spec.StartDate, spec.EndDate)
		if err != nil {
			return nil, err
		}
		return &models.IterationPlan{Mode: models.IterateByDate, Units: units}, nil
	}

	return nil, ErrMissingIterationKey
}

func stringValue(params SearchParams, key string) (string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %s: expected string, got %T", key, v)
	}
	return s, nil
}

func intList(params SearchParams, key string) ([]int, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch vv := v.(type) {
	case int:
		return []int{vv}, nil
	case []int:
		return vv, nil
	case []any:
		out := make([]int, 0, len(vv))
		for _, e := range vv {
			n, ok := e.(int)
			if !ok {
				return nil, fmt.Errorf("parameter %s: expected int element, got %T", key, e)
			}
			out = append(out, n)
		}
		return out, nil
	}
	return nil, fmt.Errorf("parameter %s: expected int or int list, got %T", key, v)
}

func stringList(params SearchParams, key string) ([]string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch vv := v.(type) {
	case string:
		return []string{vv}, nil
	case []string:
		return vv, nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("parameter %s: expected string element, got %T", key, e)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("parameter %s: expected string or string list, got %T", key, v)
}
