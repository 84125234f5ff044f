package clock

import "time"

// Clock abstracts time so plan builds stay deterministic in tests; the
// scheduling engine derives start dates and deadlines from it.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
