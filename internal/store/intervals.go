package store

import (
	"database/sql"
	"fmt"
	"time"
)

// RecordInterval stores a countdown that ran to completion.
func (s *Store) RecordInterval(mode string, seconds int, completedAt time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO intervals (mode, duration, completed_at) VALUES (?, ?, ?)`,
		mode, seconds, completedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record interval: %w", err)
	}
	return nil
}

func (s *Store) ListIntervals(f IntervalFilter) ([]Interval, error) {
	query := `SELECT id, mode, duration, completed_at FROM intervals WHERE 1=1`
	var args []any

	if f.Mode != "" {
		query += ` AND mode = ?`
		args = append(args, f.Mode)
	}
	if f.From != nil {
		query += ` AND completed_at >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND completed_at < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY completed_at DESC, id DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list intervals: %w", err)
	}
	defer rows.Close()

	var intervals []Interval
	for rows.Next() {
		var iv Interval
		var completedAt string
		if err := rows.Scan(&iv.ID, &iv.Mode, &iv.Duration, &completedAt); err != nil {
			return nil, err
		}
		iv.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

func (s *Store) GetDailySummary(from, to time.Time) ([]DailySummary, error) {
	rows, err := s.db.Query(`
		SELECT date(completed_at) AS day, mode, COALESCE(SUM(duration), 0), COUNT(*)
		FROM intervals
		WHERE completed_at >= ? AND completed_at < ?
		GROUP BY day, mode
		ORDER BY day, mode DESC`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("daily summary: %w", err)
	}
	defer rows.Close()

	var summaries []DailySummary
	for rows.Next() {
		var ds DailySummary
		if err := rows.Scan(&ds.Date, &ds.Mode, &ds.TotalSeconds, &ds.Count); err != nil {
			return nil, err
		}
		summaries = append(summaries, ds)
	}
	return summaries, rows.Err()
}

// GetTodayTotal returns the seconds of work completed today (UTC).
func (s *Store) GetTodayTotal() (int64, error) {
	today := time.Now().UTC().Format("2006-01-02")
	var total sql.NullInt64
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(duration), 0)
		FROM intervals
		WHERE date(completed_at) = ? AND mode = 'work'`, today,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}
