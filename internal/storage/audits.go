package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/HarshDhiman001/site-plus/internal/report"
)

// MaxAuditHistory is the per-user history window. ListRecentAudits never
// returns more rows than this regardless of the requested limit.
const MaxAuditHistory = 10

// AppendAudit stores a completed report in the user's audit history. The
// full report is serialized into the payload column; history rows are never
// updated or deleted afterwards.
func (s *Store) AppendAudit(ctx context.Context, userID int64, rep *report.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling report payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO audits (user_id, url_or_title, region, overall_score, summary, timestamp, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, rep.URLOrTitle, rep.Region, rep.OverallScore, rep.Summary, rep.Timestamp, string(payload),
	)
	if err != nil {
		return fmt.Errorf("appending audit: %w", err)
	}
	return nil
}

// ListRecentAudits returns the user's most recent reports, newest first,
// ordered by each report's own timestamp field rather than insertion order.
// A non-positive or oversized limit is clamped to MaxAuditHistory; the cap
// is enforced here, at read time.
func (s *Store) ListRecentAudits(ctx context.Context, userID int64, limit int) ([]report.Report, error) {
	if limit <= 0 || limit > MaxAuditHistory {
		limit = MaxAuditHistory
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM audits
		 WHERE user_id = ?
		 ORDER BY timestamp DESC, id DESC
		 LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent audits: %w", err)
	}
	defer rows.Close()

	var reports []report.Report
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning audit row: %w", err)
		}
		var rep report.Report
		if err := json.Unmarshal([]byte(payload), &rep); err != nil {
			return nil, fmt.Errorf("unmarshaling audit payload: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit rows: %w", err)
	}

	return reports, nil
}

// CountAuditsSince returns the number of audits stored after the given
// SQLite datetime string, across all users. Used by the usage dashboard.
func (s *Store) CountAuditsSince(ctx context.Context, since string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audits WHERE created_at >= ?`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting audits: %w", err)
	}
	return count, nil
}

// AverageOverallScore returns the mean overall score of every stored audit,
// or 0 when no audits exist.
func (s *Store) AverageOverallScore(ctx context.Context) (float64, error) {
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT AVG(overall_score) FROM audits`,
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("averaging overall scores: %w", err)
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}
