package utils

import "time"

// DateOnly truncates a timestamp to midnight in its own location. Task
// deadlines are calendar dates, so every comparison against "today" goes
// through this.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
