package entry

import (
	"fmt"

	"jobacct/acct"
)

// Parser turns one raw field map into a canonical entry.  The set of
// implementations is closed: one per dialect, selected at file-open
// time.
type Parser interface {
	Parse(record map[string]string) (*Entry, error)
}

// ParserFor selects the parser for a dialect.  opts may be nil; it is
// only meaningful for the Slurm dialects.
func ParserFor(name acct.DialectName, opts *SlurmOptions) (Parser, error) {
	switch name {
	case acct.SGE:
		return sgeParser{}, nil
	case acct.SlurmPipe, acct.SlurmBang:
		return newSlurmParser(opts), nil
	}
	return nil, fmt.Errorf("%w: dialect %s", acct.ErrUnknownFormat, name)
}
