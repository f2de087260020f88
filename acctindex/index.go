// Month index of an SGE accounting file: the byte offset at which each
// (year, month) first appears, so a consumer that wants one month need
// not scan the whole multi-year file from the top.
//
// The job date is the normalized end time: for invalidating failures
// the entry layer has already set it to the submission time, the only
// trustworthy timestamp in such records.  Dates are interpreted in UTC.

package acctindex

import (
	"io"
	"sort"
	"time"

	"jobacct/acct"
	"jobacct/entry"
)

type MonthOffset struct {
	Year   int
	Month  int // 1-12
	Offset int64
}

type Index []MonthOffset

// Build scans the SGE accounting file at path once and returns the
// index sorted by (year, month).
func Build(path string) (Index, error) {
	stream, err := entry.OpenDialect(path, acct.SGE)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	seen := make(map[[2]int]bool)
	index := make(Index, 0)
	for {
		e, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if e.EndTime == nil {
			continue
		}
		t := time.Unix(*e.EndTime, 0).UTC()
		key := [2]int{t.Year(), int(t.Month())}
		if !seen[key] {
			seen[key] = true
			index = append(index, MonthOffset{
				Year:   key[0],
				Month:  key[1],
				Offset: stream.Offset(),
			})
		}
	}
	sort.Slice(index, func(i, j int) bool {
		if index[i].Year != index[j].Year {
			return index[i].Year < index[j].Year
		}
		return index[i].Month < index[j].Month
	})
	return index, nil
}
