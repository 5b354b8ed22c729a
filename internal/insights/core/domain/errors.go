package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDataLoad           = errors.New("data load failed")
	ErrMissingColumn      = errors.New("missing required column")
	ErrUnrecognizedColumn = errors.New("unrecognized column")
	ErrDuplicateColumn    = errors.New("duplicate column")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidDate        = errors.New("invalid date")
	ErrEmptySource        = errors.New("source has no header row")
)

// FieldError reports a single cell that could not be typed.
type FieldError struct {
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("column %s: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("column %s: %v %q", e.Column, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// DataLoadError is returned by every dataset source. Row is the 1-based data
// row (header excluded) or 0 when the failure is not tied to a row.
type DataLoadError struct {
	Source  string
	Row     int
	Columns []string
	Err     error
}

func (e *DataLoadError) Error() string {
	var b strings.Builder
	b.WriteString("load ")
	b.WriteString(e.Source)
	if e.Row > 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if len(e.Columns) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Columns, ", "))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Is lets callers match any load failure with errors.Is(err, ErrDataLoad).
func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

// CheckHeader validates a header row against the recognized columns.
// In strict mode unrecognized names fail; otherwise they are ignored.
func CheckHeader(header []string, strict bool) error {
	seen := make(map[string]bool, len(header))
	var unknown, dup []string
	for _, h := range header {
		name := strings.TrimSpace(h)
		if seen[name] {
			dup = append(dup, name)
			continue
		}
		seen[name] = true
		if _, ok := columnIndex[name]; !ok && strict {
			unknown = append(unknown, name)
		}
	}
	if len(dup) > 0 {
		return &DataLoadError{Columns: dup, Err: ErrDuplicateColumn}
	}
	var missing []string
	for _, c := range columns {
		if c.Required && !seen[c.Name] {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		return &DataLoadError{Columns: missing, Err: ErrMissingColumn}
	}
	if len(unknown) > 0 {
		return &DataLoadError{Columns: unknown, Err: ErrUnrecognizedColumn}
	}
	return nil
}
