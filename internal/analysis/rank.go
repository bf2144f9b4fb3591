package analysis

import "sort"

type RankedScenario struct {
	Rank int    `json:"rank"`
	Name string `json:"name"`
	Summary
}

// RankScenarios sorts descending by net position; ties break by name.
func RankScenarios(byName map[string]Summary) []RankedScenario {
	out := make([]RankedScenario, 0, len(byName))
	for name, s := range byName {
		out = append(out, RankedScenario{Name: name, Summary: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NetPosition != out[j].NetPosition {
			return out[i].NetPosition > out[j].NetPosition
		}
		return out[i].Name < out[j].Name
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
