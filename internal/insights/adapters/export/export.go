// Package export writes a filtered view as a downloadable table.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"customer-insights-service/internal/insights/core/domain"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const sheetName = "Customers"

var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat accepts "csv" or "xlsx" in any case. Empty means csv.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

func (f Format) FileName(base string) string {
	return base + "." + string(f)
}

// Write renders the header row followed by every record of the view.
func Write(w io.Writer, f Format, view domain.View) error {
	switch f {
	case FormatCSV:
		return writeCSV(w, view)
	case FormatXLSX:
		return writeXLSX(w, view)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

func header() []string {
	cols := domain.Columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}

func writeCSV(w io.Writer, view domain.View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header()); err != nil {
		return err
	}
	for i := 0; i < view.Len(); i++ {
		if err := cw.Write(view.At(i).Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, view domain.View) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	cols := domain.Columns()
	head := make([]any, len(cols))
	for i, c := range cols {
		head[i] = c.Name
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}

	for i := 0; i < view.Len(); i++ {
		rec := view.At(i)
		row := make([]any, len(cols))
		for j, c := range cols {
			if v, ok := rec.Number(c.Name); ok {
				row[j] = v
				continue
			}
			row[j], _ = rec.Text(c.Name)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}
