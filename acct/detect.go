package acct

import (
	"strings"
)

// Detection thresholds.  An SGE record has 45 fixed fields and thus at
// least 44 field-separating colons; a threshold rather than an exact
// count tolerates escaped colons inside field values.  A Slurm header
// or record has at least six fields in any export we've seen.
const (
	sgeMinColons       = 44
	slurmMinDelimiters = 5
)

// DetectDialect classifies the first raw line of an accounting file by
// counting delimiter characters.  First match wins, in this order; the
// thresholds are fixed.
func DetectDialect(firstLine string) (DialectName, error) {
	switch {
	case strings.Count(firstLine, ":") >= sgeMinColons:
		return SGE, nil
	case strings.Count(firstLine, "|") >= slurmMinDelimiters:
		return SlurmPipe, nil
	case strings.Count(firstLine, "!") >= slurmMinDelimiters:
		return SlurmBang, nil
	}
	return "", ErrUnknownFormat
}
