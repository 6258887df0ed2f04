// FILE: lixenwraith/filelog/format.go
package filelog

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// errorDetail carries a message and the error to describe after it
type errorDetail struct {
	msg any
	err error
}

// serializer manages the buffered writing of log entries.
type serializer struct {
	buf []byte
}

// newSerializer creates a serializer instance.
func newSerializer() *serializer {
	return &serializer{
		buf: make([]byte, 0, 1024), // Initial reasonable capacity
	}
}

// reset clears the serializer buffer for reuse.
func (s *serializer) reset() {
	s.buf = s.buf[:0]
}

// serialize formats a record as "[timestamp] [LEVEL] [source]: message\r\n".
func (s *serializer) serialize(record logRecord) []byte {
	s.reset()

	s.buf = append(s.buf, '[')
	s.buf = record.TimeStamp.AppendFormat(s.buf, entryTimestampFormat)
	s.buf = append(s.buf, "] ["...)
	s.buf = append(s.buf, record.Level.String()...)
	s.buf = append(s.buf, "] ["...)
	s.buf = append(s.buf, record.Source...)
	s.buf = append(s.buf, "]: "...)
	s.writeMessage(record.Message)
	s.buf = append(s.buf, lineTerminator...)

	return s.buf
}

// writeMessage renders msg, replacing whatever was written with a placeholder if rendering panics
func (s *serializer) writeMessage(msg any) {
	start := len(s.buf)
	defer func() {
		if r := recover(); r != nil {
			s.buf = fmt.Appendf(s.buf[:start], "<message rendering failed: %v>", r)
		}
	}()
	s.writeValue(msg)
}

// serializeBanner formats the first line of a new session file.
func (s *serializer) serializeBanner(timestamp time.Time) []byte {
	s.reset()

	s.buf = append(s.buf, "=== Log session started "...)
	s.buf = timestamp.AppendFormat(s.buf, entryTimestampFormat)
	s.buf = append(s.buf, " ==="...)
	s.buf = append(s.buf, lineTerminator...)

	return s.buf
}

// writeValue converts a message value to its text representation.
// fallback to go-spew/spew with data structure information for types that are not explicitly supported.
func (s *serializer) writeValue(v any) {
	switch val := v.(type) {
	case string:
		s.buf = append(s.buf, val...)
	case []byte:
		s.buf = append(s.buf, val...)
	case errorDetail:
		s.writeValue(val.msg)
		s.buf = append(s.buf, lineTerminator...)
		s.buf = append(s.buf, errorBannerOpen...)
		s.buf = append(s.buf, lineTerminator...)
		s.writeErrorDetail(val.err)
		s.buf = append(s.buf, errorBannerClose...)
	case int:
		s.buf = strconv.AppendInt(s.buf, int64(val), 10)
	case int64:
		s.buf = strconv.AppendInt(s.buf, val, 10)
	case uint:
		s.buf = strconv.AppendUint(s.buf, uint64(val), 10)
	case uint64:
		s.buf = strconv.AppendUint(s.buf, val, 10)
	case float32:
		s.buf = strconv.AppendFloat(s.buf, float64(val), 'f', -1, 32)
	case float64:
		s.buf = strconv.AppendFloat(s.buf, val, 'f', -1, 64)
	case bool:
		s.buf = strconv.AppendBool(s.buf, val)
	case nil:
		s.buf = append(s.buf, "nil"...)
	case time.Time:
		s.buf = val.AppendFormat(s.buf, entryTimestampFormat)
	case error, fmt.Stringer:
		// Covers *strings.Builder and *bytes.Buffer; fmt prints nil receivers as <nil>
		s.buf = fmt.Append(s.buf, val)
	default:
		var b bytes.Buffer

		// Use a custom dumper for log-friendly, compact output.
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true, // Cleaner for logs
			DisableCapacities:       true, // Less noise
			SortKeys:                true, // Consistent map output
		}

		dumper.Fdump(&b, val)

		// Trim trailing new line added by spew
		s.buf = append(s.buf, bytes.TrimSpace(b.Bytes())...)
	}
}

// writeErrorDetail writes the error type and message, its verbose rendering when that adds
// information (stack traces for errors that record one), and the chain of wrapped causes.
// Each line ends with the line terminator.
func (s *serializer) writeErrorDetail(err error) {
	if err == nil {
		s.buf = append(s.buf, "<nil>"...)
		s.buf = append(s.buf, lineTerminator...)
		return
	}

	s.writeErrorLine("", err)

	msg := fmt.Sprint(err)
	if verbose := fmt.Sprintf("%+v", err); verbose != msg {
		s.buf = append(s.buf, verbose...)
		s.buf = append(s.buf, lineTerminator...)
	}

	for _, cause := range unwrapAll(err) {
		s.writeErrorLine("caused by ", cause)
	}
}

func (s *serializer) writeErrorLine(prefix string, err error) {
	s.buf = append(s.buf, prefix...)
	s.buf = fmt.Appendf(s.buf, "%T: %v", err, err)
	s.buf = append(s.buf, lineTerminator...)
}

// unwrapAll walks the wrapped error tree depth-first, excluding err itself
func unwrapAll(err error) []error {
	var causes []error
	var walk func(error)
	walk = func(e error) {
		var next []error
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			next = u.Unwrap()
		default:
			if inner := errors.Unwrap(e); inner != nil {
				next = []error{inner}
			}
		}
		for _, n := range next {
			if n == nil {
				continue
			}
			causes = append(causes, n)
			walk(n)
		}
	}
	walk(err)
	return causes
}
