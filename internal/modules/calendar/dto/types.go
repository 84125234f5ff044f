package dto

type ProviderInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Enabled      bool     `json:"enabled"`
	Builtin      bool     `json:"builtin"`
	Binary       string   `json:"binary,omitempty"`
	Capabilities []string `json:"capabilities"`
}

type EventInput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DurationMin int    `json:"duration_minutes"`
	Description string `json:"description,omitempty"`
}

type PushInput struct {
	Provider string     `json:"provider"`
	Event    EventInput `json:"event"`
}

type PushOutput struct {
	Provider string `json:"provider"`
	EventID  string `json:"event_id,omitempty"`
}

type DoctorResult struct {
	Name            string `json:"name"`
	Builtin         bool   `json:"builtin"`
	BinaryReachable bool   `json:"binary_reachable"`
	ChecksumValid   bool   `json:"checksum_valid"`
	LifecycleOK     bool   `json:"lifecycle_ok"`
	Error           string `json:"error,omitempty"`
}
