package domain

// Config is the immutable tuning surface of one build. Stages receive it by
// value; nothing in this package reads globals.
type Config struct {
	SessionMinutes       int
	BreakMinutes         int
	BreakIntervalMinutes int
	ReviewMinutes        int
	MaxDailyHours        int
	DefaultPlanDays      int
	MaxPlanDays          int
	MorningSlot          string
	AfternoonSlot        string
	EveningSlot          string
	ReviewSlot           string
	ReviewOffsets        []int
}

func DefaultConfig() Config {
	return Config{
		SessionMinutes:       60,
		BreakMinutes:         15,
		BreakIntervalMinutes: 120,
		ReviewMinutes:        30,
		MaxDailyHours:        8,
		DefaultPlanDays:      7,
		MaxPlanDays:          14,
		MorningSlot:          "09:00",
		AfternoonSlot:        "14:00",
		EveningSlot:          "19:00",
		ReviewSlot:           "20:00",
		ReviewOffsets:        []int{1, 3, 7},
	}
}
