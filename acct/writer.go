// Dialect-aware record writer, the counterpart of the tokenizer.
// Minimal quoting: a field is quoted only when it contains the
// delimiter, the quote, or the escape; quote and escape bytes inside a
// quoted field are escaped.  A newline in a field value is an error.
// Anything the writer emits tokenizes back to the same fields under
// the same dialect.

package acct

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Writer struct {
	w       *bufio.Writer
	dialect Dialect
}

func NewWriter(output io.Writer, name DialectName) (*Writer, error) {
	dialect, found := LookupDialect(name)
	if !found {
		return nil, fmt.Errorf("%w: dialect %s", ErrUnknownFormat, name)
	}
	return &Writer{w: bufio.NewWriter(output), dialect: dialect}, nil
}

// WriteRecord writes one record followed by a newline.
func (w *Writer) WriteRecord(fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.w.WriteByte(w.dialect.Delimiter); err != nil {
				return err
			}
		}
		if err := w.writeField(f); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// WriteNamedRecord writes the named fields of `record` in the order
// given by `fields`; missing fields are written empty.
func (w *Writer) WriteNamedRecord(record map[string]string, fields []string) error {
	row := make([]string, len(fields))
	for i, name := range fields {
		row[i] = record[name]
	}
	return w.WriteRecord(row)
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) writeField(f string) error {
	d := w.dialect
	if strings.IndexByte(f, '\n') != -1 {
		// Records are line-oriented, a newline in a field is unrepresentable.
		return fmt.Errorf("%w: newline in field value", SyntaxErr)
	}
	if !strings.ContainsAny(f, string([]byte{d.Delimiter, d.Quote, d.Escape})) {
		_, err := w.w.WriteString(f)
		return err
	}
	if err := w.w.WriteByte(d.Quote); err != nil {
		return err
	}
	for i := 0; i < len(f); i++ {
		c := f[i]
		if c == d.Quote || c == d.Escape {
			if err := w.w.WriteByte(d.Escape); err != nil {
				return err
			}
		}
		if err := w.w.WriteByte(c); err != nil {
			return err
		}
	}
	return w.w.WriteByte(d.Quote)
}
