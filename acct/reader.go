// Accounting file reader: resolves a dialect and a field schema, then
// yields one raw field map per data line.
//
// The sequence is lazy, forward-only, and not restartable; re-scanning
// a file means opening a new Reader.  The file handle is released on
// EOF, on any fatal error, and on Close, whichever comes first.

package acct

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"jobacct/common"
)

type Reader struct {
	path    string
	file    *os.File // nil when reading from a plain stream
	rd      *bufio.Reader
	name    DialectName
	dialect Dialect
	fields  []string
	lineNo  int
	offset  int64
	nextOff int64
	soft    int
	closed  bool
}

// Open opens path and autodetects its dialect from the first line.
// Detection does not consume the line: the reader is rewound to the
// start of the file before the schema is resolved.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	firstLine, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		f.Close()
		return nil, err
	}
	name, err := DetectDialect(strings.TrimSuffix(firstLine, "\n"))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}
	return newReader(f, f, path, name)
}

// OpenDialect opens path with a pre-selected dialect, no detection.
func OpenDialect(path string, name DialectName) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return newReader(f, f, path, name)
}

// NewReader reads accounting data in the given dialect from a plain
// stream; `path` is used in diagnostics only.  Close does not close
// the stream.
func NewReader(input io.Reader, name DialectName, path string) (*Reader, error) {
	return newReader(input, nil, path, name)
}

func newReader(input io.Reader, file *os.File, path string, name DialectName) (*Reader, error) {
	dialect, found := LookupDialect(name)
	if !found {
		if file != nil {
			file.Close()
		}
		return nil, fmt.Errorf("%s: %w: dialect %s", path, ErrUnknownFormat, name)
	}
	r := &Reader{
		path:    path,
		file:    file,
		rd:      bufio.NewReader(input),
		name:    name,
		dialect: dialect,
	}
	if name == SGE {
		// No header line exists in the file, the schema is fixed.
		r.fields = SGEAccountingFields
		return r, nil
	}
	// The schema is the file's own header line, split on the dialect
	// delimiter.  It may vary between files and is not validated
	// against any fixed expectation.
	header, err := r.rd.ReadString('\n')
	if err != nil && err != io.EOF {
		r.Close()
		return nil, err
	}
	r.lineNo = 1
	r.nextOff = int64(len(header))
	header = strings.TrimSuffix(header, "\n")
	if header == "" {
		r.Close()
		return nil, &LineError{Path: path, LineNo: 1, Dialect: name, Err: fmt.Errorf("%w: empty header", SyntaxErr)}
	}
	r.fields = strings.Split(header, string(dialect.Delimiter))
	return r, nil
}

// Next returns the raw field map for the next data line, or io.EOF
// when the file is exhausted.  Lines that are blank or start with `#`
// (snapshot banners) are skipped.  For the SGE dialect a tokenization
// failure or a short row is fatal; for the header-derived Slurm
// dialects such rows are skipped with a diagnostic and counted in
// SoftErrors.
func (r *Reader) Next() (map[string]string, error) {
	if r.closed {
		return nil, io.EOF
	}
	for {
		line, err := r.rd.ReadString('\n')
		if len(line) == 0 {
			r.Close()
			if err == nil || err == io.EOF {
				return nil, io.EOF
			}
			return nil, err
		}
		if err != nil && err != io.EOF {
			r.Close()
			return nil, err
		}
		r.lineNo++
		r.offset = r.nextOff
		r.nextOff += int64(len(line))
		line = strings.TrimSuffix(line, "\n")
		if line == "" || line[0] == '#' {
			continue
		}
		toks, terr := tokenize(line, r.dialect)
		if terr == nil {
			// The SGE schema is fixed-width: a short row breaks the
			// contract.  Surplus fields are tolerated, the detection
			// threshold already allows for escaped delimiters.
			if r.name == SGE && len(toks) < len(r.fields) {
				terr = fmt.Errorf("%w: %d fields, expected %d", SyntaxErr, len(toks), len(r.fields))
			} else if r.name != SGE && len(toks) != len(r.fields) {
				terr = fmt.Errorf("%w: %d fields, header has %d", SyntaxErr, len(toks), len(r.fields))
			}
		}
		if terr != nil {
			lerr := &LineError{Path: r.path, LineNo: r.lineNo, Dialect: r.name, Err: terr}
			if r.name == SGE {
				r.Close()
				return nil, lerr
			}
			common.Log.Warningf("Skipping row: %v", lerr)
			r.soft++
			continue
		}
		m := make(map[string]string, len(r.fields))
		for i, name := range r.fields {
			m[name] = toks[i]
		}
		return m, nil
	}
}

// Close releases the underlying file, if any.  Idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Fields is the resolved field schema, in file order.  Callers must
// not mutate it.
func (r *Reader) Fields() []string {
	return r.fields
}

func (r *Reader) DialectName() DialectName {
	return r.name
}

// LineNo is the 1-based line number of the most recently read line.
func (r *Reader) LineNo() int {
	return r.lineNo
}

// Offset is the byte offset of the start of the most recently returned
// record.
func (r *Reader) Offset() int64 {
	return r.offset
}

// SoftErrors is the count of rows skipped with a diagnostic so far.
func (r *Reader) SoftErrors() int {
	return r.soft
}

func (r *Reader) Path() string {
	return r.path
}
