package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studykit/internal/modules/schedule/domain"
	scheduleout "studykit/internal/modules/schedule/port/out"
	apperrors "studykit/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLitePlanStore is the store of record for generated plans, mirroring the
// original study_plans table: one row per plan with the full day payload as
// JSON plus status and creation time for querying.
type SQLitePlanStore struct {
	db *sql.DB
}

func NewSQLitePlanStore(dbPath string) (scheduleout.PlanStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLitePlanStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLitePlanStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS plans (
  id TEXT PRIMARY KEY,
  status TEXT NOT NULL,
  created_at TEXT NOT NULL,
  payload TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create plans table: %w", err)
	}
	return nil
}

func (s *SQLitePlanStore) SavePlan(ctx context.Context, plan domain.Plan) (string, error) {
	payload, err := json.Marshal(encodePlan(plan))
	if err != nil {
		return "", fmt.Errorf("marshal plan payload: %w", err)
	}
	const stmt = `
INSERT INTO plans (id, status, created_at, payload) VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET status=excluded.status, payload=excluded.payload;
`
	if _, err := s.db.ExecContext(ctx, stmt, plan.ID, string(plan.Status), plan.CreatedAt.Format(time.RFC3339), string(payload)); err != nil {
		return "", fmt.Errorf("save plan: %w", err)
	}
	return plan.ID, nil
}

func (s *SQLitePlanStore) GetCurrentPlan(ctx context.Context) (domain.Plan, error) {
	const query = `SELECT payload FROM plans WHERE status = ? ORDER BY created_at DESC, id DESC LIMIT 1`
	row := s.db.QueryRowContext(ctx, query, string(domain.PlanStatusActive))
	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return domain.Plan{}, apperrors.ErrNoActivePlan
		}
		return domain.Plan{}, fmt.Errorf("query current plan: %w", err)
	}
	return decodePayload(payload)
}

func (s *SQLitePlanStore) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	const query = `SELECT payload FROM plans ORDER BY created_at DESC, id DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var plans []domain.Plan
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		plan, err := decodePayload(payload)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (s *SQLitePlanStore) ArchivePlan(ctx context.Context, planID string) error {
	const stmt = `UPDATE plans SET status = ?, payload = json_set(payload, '$.status', ?) WHERE id = ?`
	result, err := s.db.ExecContext(ctx, stmt, string(domain.PlanStatusArchived), string(domain.PlanStatusArchived), planID)
	if err != nil {
		return fmt.Errorf("archive plan: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive plan: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, planID)
	}
	return nil
}

type planRecord struct {
	ID        string       `json:"id"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	Days      []dayRecord  `json:"days"`
	Summary   summaryRecord `json:"summary"`
}

type dayRecord struct {
	Label    string          `json:"label"`
	Date     string          `json:"date"`
	Sessions []sessionRecord `json:"sessions"`
}

type sessionRecord struct {
	Time        string `json:"time"`
	DurationMin int    `json:"duration_minutes"`
	Topic       string `json:"topic,omitempty"`
	Type        string `json:"type"`
}

type summaryRecord struct {
	TotalDays      int      `json:"total_days"`
	TotalSessions  int      `json:"total_sessions"`
	StudySessions  int      `json:"study_sessions"`
	TopicsCovered  []string `json:"topics_covered"`
	EstimatedHours int      `json:"estimated_hours"`
}

func encodePlan(plan domain.Plan) planRecord {
	record := planRecord{
		ID:        plan.ID,
		Status:    string(plan.Status),
		CreatedAt: plan.CreatedAt,
		Summary: summaryRecord{
			TotalDays:      plan.Summary.TotalDays,
			TotalSessions:  plan.Summary.TotalSessions,
			StudySessions:  plan.Summary.StudySessions,
			TopicsCovered:  plan.Summary.TopicsCovered,
			EstimatedHours: plan.Summary.EstimatedHours,
		},
	}
	for _, day := range plan.Days {
		d := dayRecord{Label: day.Label, Date: day.Date.Format("2006-01-02")}
		for _, session := range day.Sessions {
			d.Sessions = append(d.Sessions, sessionRecord{
				Time:        session.Time,
				DurationMin: session.DurationMin,
				Topic:       session.Topic,
				Type:        string(session.Type),
			})
		}
		record.Days = append(record.Days, d)
	}
	return record
}

func decodePayload(payload string) (domain.Plan, error) {
	record := planRecord{}
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return domain.Plan{}, fmt.Errorf("decode plan payload: %w", err)
	}
	plan := domain.Plan{
		ID:        record.ID,
		Status:    domain.PlanStatus(record.Status),
		CreatedAt: record.CreatedAt,
		Summary: domain.Summary{
			TotalDays:      record.Summary.TotalDays,
			TotalSessions:  record.Summary.TotalSessions,
			StudySessions:  record.Summary.StudySessions,
			TopicsCovered:  record.Summary.TopicsCovered,
			EstimatedHours: record.Summary.EstimatedHours,
		},
	}
	for _, d := range record.Days {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return domain.Plan{}, fmt.Errorf("decode day date: %w", err)
		}
		day := domain.Day{Label: d.Label, Date: date}
		for _, s := range d.Sessions {
			day.Sessions = append(day.Sessions, domain.Session{
				Time:        s.Time,
				DurationMin: s.DurationMin,
				Topic:       s.Topic,
				Type:        domain.SessionType(s.Type),
			})
		}
		plan.Days = append(plan.Days, day)
	}
	return plan, nil
}
