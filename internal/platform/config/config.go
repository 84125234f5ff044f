package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SchedulingDefaults is the immutable tuning surface of the plan engine. A
// value is resolved once at startup and threaded through the builder; stages
// never reach for globals.
type SchedulingDefaults struct {
	SessionMinutes  int    `yaml:"session_minutes"`
	BreakMinutes    int    `yaml:"break_minutes"`
	BreakInterval   int    `yaml:"break_interval_minutes"`
	ReviewMinutes   int    `yaml:"review_minutes"`
	MaxDailyHours   int    `yaml:"max_daily_hours"`
	DefaultPlanDays int    `yaml:"default_plan_days"`
	MaxPlanDays     int    `yaml:"max_plan_days"`
	MorningSlot     string `yaml:"morning_slot"`
	AfternoonSlot   string `yaml:"afternoon_slot"`
	EveningSlot     string `yaml:"evening_slot"`
	ReviewSlot      string `yaml:"review_slot"`
}

type Config struct {
	HomePath   string
	DBPath     string
	PlansPath  string
	ICSPath    string
	Scheduling SchedulingDefaults
}

type fileConfig struct {
	Scheduling SchedulingDefaults `yaml:"scheduling"`
}

func DefaultScheduling() SchedulingDefaults {
	return SchedulingDefaults{
		SessionMinutes:  60,
		BreakMinutes:    15,
		BreakInterval:   120,
		ReviewMinutes:   30,
		MaxDailyHours:   8,
		DefaultPlanDays: 7,
		MaxPlanDays:     14,
		MorningSlot:     "09:00",
		AfternoonSlot:   "14:00",
		EveningSlot:     "19:00",
		ReviewSlot:      "20:00",
	}
}

// New resolves paths under homePath and merges `.studykit/config.yaml` over
// the scheduling defaults. A missing config file is not an error.
func New(homePath string) (Config, error) {
	if homePath == "" {
		return Config{}, fmt.Errorf("home path is required")
	}
	cfg := Config{
		HomePath:   homePath,
		DBPath:     filepath.Join(homePath, ".studykit", "studykit.db"),
		PlansPath:  filepath.Join(homePath, "plans"),
		ICSPath:    filepath.Join(homePath, ".studykit", "calendar.ics"),
		Scheduling: DefaultScheduling(),
	}
	raw, err := os.ReadFile(filepath.Join(homePath, ".studykit", "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{Scheduling: cfg.Scheduling}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Scheduling = fc.Scheduling
	if err := cfg.Scheduling.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (s SchedulingDefaults) Validate() error {
	if s.SessionMinutes <= 0 || s.BreakMinutes <= 0 || s.ReviewMinutes <= 0 {
		return fmt.Errorf("session, break, and review minutes must be positive")
	}
	if s.BreakInterval <= 0 {
		return fmt.Errorf("break interval must be positive")
	}
	if s.MaxDailyHours <= 0 || s.MaxDailyHours > 24 {
		return fmt.Errorf("max daily hours must be in 1..24")
	}
	if s.DefaultPlanDays <= 0 || s.MaxPlanDays < s.DefaultPlanDays {
		return fmt.Errorf("plan day bounds are inconsistent")
	}
	return nil
}
