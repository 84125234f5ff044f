package domain

import (
	"math"
	"sort"
	"time"
)

// Prioritize orders topics by deadline urgency: fewest days remaining first,
// topics without a deadline last. The sort is stable, so equal urgency keeps
// the caller's order. Past deadlines produce negative scores and therefore
// sort before everything else.
func Prioritize(topics []Topic, now time.Time) []Topic {
	out := append([]Topic(nil), topics...)
	sort.SliceStable(out, func(i, j int) bool {
		return urgency(out[i], now) < urgency(out[j], now)
	})
	return out
}

func urgency(topic Topic, now time.Time) float64 {
	if !topic.HasDeadline() {
		return math.Inf(1)
	}
	return topic.Deadline.Sub(now).Hours() / 24
}
