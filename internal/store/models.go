package store

import "time"

type Setting struct {
	Key   string
	Value string
}

// Interval is one countdown that ran to zero.
type Interval struct {
	ID          int64
	Mode        string // work, break
	Duration    int64  // seconds
	CompletedAt time.Time
}

// IntervalFilter is used to filter intervals in queries.
type IntervalFilter struct {
	Mode  string
	From  *time.Time
	To    *time.Time
	Limit int
}

// DailySummary represents aggregated time per mode per day.
type DailySummary struct {
	Date         string
	Mode         string
	TotalSeconds int64
	Count        int
}
