// Canonical accounting entries.
//
// One Entry is the scheduler-agnostic record produced from one line of
// an accounting file; billing and reporting code consumes these
// without caring which scheduler wrote the line.  An Entry is never
// mutated after construction.

package entry

import (
	"fmt"
	"strconv"

	"jobacct/common"
)

type Entry struct {
	JobID    int64
	Owner    string
	JobName  string
	Account  string
	Project  string // secondary grouping key; semantics differ per scheduler
	NodeList string

	// nil means the source field was missing or not parseable.
	Cpus           *int64
	Wallclock      *int64 // seconds
	SubmissionTime *int64 // epoch seconds
	StartTime      *int64
	EndTime        *int64

	// Scheduler-specific; 0 commonly means "not failed" but the
	// meaning is not universal.
	FailedCode int

	// The whole line as read, retained for diagnostics.
	RawFields map[string]string
}

// The field getters return nil for a field that is missing from the
// record or whose value does not parse; structurally required fields
// go through getRequiredInt instead.

func getInt(record map[string]string, field string) *int64 {
	s, found := record[field]
	if !found {
		return nil
	}
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

func getTimestamp(record map[string]string, field string) *int64 {
	s, found := record[field]
	if !found {
		return nil
	}
	value, err := common.ParseSchedulerTime(s)
	if err != nil {
		return nil
	}
	return &value
}

func getRequiredInt(record map[string]string, field string) (int64, error) {
	s, found := record[field]
	if !found {
		return 0, fmt.Errorf("Missing required field %s", field)
	}
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("Bad value for required field %s: %q", field, s)
	}
	return value, nil
}
