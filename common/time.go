package common

import (
	"time"
)

// The textual timestamp format used by sacct output (localtime, no zone
// offset).  The schedulers we ingest from agree on this format; we
// interpret it as UTC, as the historical billing pipeline did.
const SchedulerTimeFormat = "2006-01-02T15:04:05"

// ParseSchedulerTime parses a scheduler timestamp into epoch seconds.
func ParseSchedulerTime(s string) (int64, error) {
	t, err := time.Parse(SchedulerTimeFormat, s)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// FormatSchedulerTime is the inverse of ParseSchedulerTime.
func FormatSchedulerTime(epoch int64) string {
	return time.Unix(epoch, 0).UTC().Format(SchedulerTimeFormat)
}
