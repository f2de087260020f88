// Stream: the consumer-facing surface of the core.  Open a file, get a
// lazy sequence of canonical entries, close it.

package entry

import (
	"jobacct/acct"
	"jobacct/common"
)

type Stream struct {
	rd     *acct.Reader
	parser Parser
	soft   int
}

// Open opens path with dialect autodetection.
func Open(path string) (*Stream, error) {
	rd, err := acct.Open(path)
	if err != nil {
		return nil, err
	}
	return newStream(rd, nil)
}

// OpenDialect opens path with a pre-selected dialect.
func OpenDialect(path string, name acct.DialectName) (*Stream, error) {
	rd, err := acct.OpenDialect(path, name)
	if err != nil {
		return nil, err
	}
	return newStream(rd, nil)
}

// OpenOptions is Open with parser options.
func OpenOptions(path string, opts *SlurmOptions) (*Stream, error) {
	rd, err := acct.Open(path)
	if err != nil {
		return nil, err
	}
	return newStream(rd, opts)
}

func newStream(rd *acct.Reader, opts *SlurmOptions) (*Stream, error) {
	parser, err := ParserFor(rd.DialectName(), opts)
	if err != nil {
		rd.Close()
		return nil, err
	}
	return &Stream{rd: rd, parser: parser}, nil
}

// Next returns the next entry, or io.EOF when the file is exhausted.
// An SGE record that fails to parse is fatal (fixed-format contract);
// a Slurm record that fails to parse is skipped with a diagnostic and
// counted in SoftErrors.
func (s *Stream) Next() (*Entry, error) {
	for {
		record, err := s.rd.Next()
		if err != nil {
			return nil, err
		}
		e, perr := s.parser.Parse(record)
		if perr == nil {
			return e, nil
		}
		lerr := &acct.LineError{
			Path:    s.rd.Path(),
			LineNo:  s.rd.LineNo(),
			Dialect: s.rd.DialectName(),
			Err:     perr,
		}
		if s.rd.DialectName() == acct.SGE {
			s.rd.Close()
			return nil, lerr
		}
		common.Log.Warningf("Skipping record: %v", lerr)
		s.soft++
	}
}

// SoftErrors counts rows and records skipped with a diagnostic, both
// at the tokenization layer and here.
func (s *Stream) SoftErrors() int {
	return s.soft + s.rd.SoftErrors()
}

// Offset is the byte offset of the start of the most recently returned
// record's line.
func (s *Stream) Offset() int64 {
	return s.rd.Offset()
}

func (s *Stream) LineNo() int {
	return s.rd.LineNo()
}

func (s *Stream) DialectName() acct.DialectName {
	return s.rd.DialectName()
}

// Close releases the underlying file.  Idempotent.
func (s *Stream) Close() error {
	return s.rd.Close()
}
