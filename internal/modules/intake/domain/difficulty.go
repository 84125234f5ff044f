package domain

import "strings"

// DefaultDifficulty is assumed for topics the catalog does not know.
const DefaultDifficulty = 0.5

// difficultyCatalog maps subject keywords to a difficulty in [0,1]. Matching
// is by substring of the normalized topic name, longest keyword first.
var difficultyCatalog = map[string]float64{
	"quantum":           0.9,
	"organic chemistry": 0.85,
	"calculus":          0.8,
	"algorithms":        0.8,
	"physics":           0.75,
	"statistics":        0.7,
	"chemistry":         0.7,
	"computer science":  0.65,
	"economics":         0.6,
	"algebra":           0.6,
	"programming":       0.6,
	"biology":           0.55,
	"anatomy":           0.55,
	"math":              0.55,
	"psychology":        0.5,
	"geometry":          0.5,
	"sociology":         0.45,
	"literature":        0.45,
	"history":           0.4,
	"english":           0.4,
	"geography":         0.35,
}

// LookupDifficulty rates a topic by catalog keyword. Unknown topics get the
// default mid difficulty.
func LookupDifficulty(topic string) float64 {
	normalized := strings.ToLower(strings.TrimSpace(topic))
	best := ""
	for keyword := range difficultyCatalog {
		if !strings.Contains(normalized, keyword) {
			continue
		}
		if len(keyword) > len(best) {
			best = keyword
		}
	}
	if best == "" {
		return DefaultDifficulty
	}
	return difficultyCatalog[best]
}

// EstimateHours approximates the hours needed to master a topic from its
// difficulty and the learner's current knowledge, both in [0,1].
func EstimateHours(difficulty float64, currentKnowledge float64) int {
	const baseHours = 10.0
	multiplier := 0.5 + difficulty*1.5
	gap := 1.0 - currentKnowledge
	estimated := int(baseHours * multiplier * gap)
	if estimated < 1 {
		return 1
	}
	return estimated
}
