// Strict tokenizer for one accounting record, parameterized by dialect.
//
// The rules, for all three dialects:
//
//  - the input is one line, already stripped of its terminating newline
//  - fields are separated by the dialect delimiter, exclusively
//  - fields can be empty
//  - the escape character makes the next byte literal, anywhere
//  - a field that starts with the quote character runs to the matching
//    close quote and may contain the delimiter; escapes work inside
//  - a quote character that does not start a field is literal
//  - an unterminated quoted field or a trailing escape is a syntax
//    error wrapping SyntaxErr
//
// encoding/csv cannot express the escape character, hence this.

package acct

import (
	"fmt"
	"strings"
)

func tokenize(line string, d Dialect) ([]string, error) {
	fields := make([]string, 0, 8)
	var b strings.Builder
	i := 0
	n := len(line)
	for {
		// One field per iteration, b is empty here.
		if i < n && line[i] == d.Quote && d.MinimalQuoting {
			i++
			closed := false
			for i < n {
				c := line[i]
				if c == d.Escape {
					if i+1 == n {
						return nil, fmt.Errorf("%w: escape at end of line", SyntaxErr)
					}
					b.WriteByte(line[i+1])
					i += 2
					continue
				}
				if c == d.Quote {
					i++
					closed = true
					break
				}
				b.WriteByte(c)
				i++
			}
			if !closed {
				return nil, fmt.Errorf("%w: unterminated quoted field", SyntaxErr)
			}
			if i < n && line[i] != d.Delimiter {
				return nil, fmt.Errorf("%w: data after closing quote", SyntaxErr)
			}
		} else {
			for i < n {
				c := line[i]
				if c == d.Escape {
					if i+1 == n {
						return nil, fmt.Errorf("%w: escape at end of line", SyntaxErr)
					}
					b.WriteByte(line[i+1])
					i += 2
					continue
				}
				if c == d.Delimiter {
					break
				}
				b.WriteByte(c)
				i++
			}
		}
		fields = append(fields, b.String())
		b.Reset()
		if i == n {
			return fields, nil
		}
		// Not at end of line, so this is the delimiter.
		i++
	}
}
