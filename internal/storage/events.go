package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/HarshDhiman001/site-plus/internal/models"
)

// InsertEvent stores one usage-analytics event. A missing event ID is
// replaced with a fresh UUID; empty properties become an empty JSON object.
func (s *Store) InsertEvent(ctx context.Context, event *models.AnalyticsEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	props := event.Properties
	if props == "" {
		props = "{}"
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analytics_events (event_id, user_id, name, properties)
		 VALUES (?, ?, ?, ?)`,
		event.EventID, event.UserID, event.Name, props,
	)
	if err != nil {
		return fmt.Errorf("inserting analytics event: %w", err)
	}
	return nil
}

// EventCount is the number of occurrences of one event name.
type EventCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// EventCounts returns per-event-name totals recorded after the given SQLite
// datetime string, most frequent first.
func (s *Store) EventCounts(ctx context.Context, since string) ([]EventCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, COUNT(*) AS total
		 FROM analytics_events
		 WHERE created_at >= ?
		 GROUP BY name
		 ORDER BY total DESC, name ASC`, since)
	if err != nil {
		return nil, fmt.Errorf("querying event counts: %w", err)
	}
	defer rows.Close()

	var counts []EventCount
	for rows.Next() {
		var ec EventCount
		if err := rows.Scan(&ec.Name, &ec.Count); err != nil {
			return nil, fmt.Errorf("scanning event count row: %w", err)
		}
		counts = append(counts, ec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating event count rows: %w", err)
	}

	return counts, nil
}
