package csv

import (
	"bufio"
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"customer-insights-service/internal/insights/core/domain"
	"customer-insights-service/internal/insights/core/ports"
)

type Loader struct {
	name   string
	open   func() (io.ReadCloser, error)
	strict bool
}

var _ ports.DatasetSource = (*Loader)(nil)

// NewFileLoader reads the dataset from a CSV file on disk.
func NewFileLoader(path string, strict bool) *Loader {
	return &Loader{
		name:   path,
		open:   func() (io.ReadCloser, error) { return os.Open(path) },
		strict: strict,
	}
}

// NewReaderLoader reads the dataset from an already open stream.
func NewReaderLoader(name string, r io.Reader, strict bool) *Loader {
	return &Loader{
		name:   name,
		open:   func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		strict: strict,
	}
}

func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	rc, err := l.open()
	if err != nil {
		return nil, &domain.DataLoadError{Source: l.name, Err: err}
	}
	defer rc.Close()

	if err := ctx.Err(); err != nil {
		return nil, &domain.DataLoadError{Source: l.name, Err: err}
	}

	ds, err := parse(l.name, rc, l.strict)
	if err != nil {
		var le *domain.DataLoadError
		if errors.As(err, &le) {
			le.Source = l.name
			return nil, le
		}
		return nil, &domain.DataLoadError{Source: l.name, Err: err}
	}
	return ds, nil
}

const utf8BOM = "\xEF\xBB\xBF"

func parse(name string, r io.Reader, strict bool) (*domain.Dataset, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}
	data, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptySource
	}

	// gota renames repeated names (Region_0, Region_1), so the header is
	// checked as written.
	cr := stdcsv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, domain.ErrEmptySource
	}
	if err != nil {
		return nil, err
	}
	if err := domain.CheckHeader(header, strict); err != nil {
		return nil, err
	}
	if _, err := cr.Read(); err == io.EOF {
		return domain.NewDataset(name, nil), nil
	}

	// Everything is read as text; typing happens in domain.ParseRecord so
	// the sentinel literals survive.
	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, df.Err
	}

	names := df.Names()
	cols := make(map[string][]string, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if _, ok := domain.LookupColumn(name); !ok {
			continue
		}
		cols[name] = df.Col(raw).Records()
	}

	n := df.Nrow()
	records := make([]domain.Record, 0, n)
	row := make(map[string]string, len(cols))
	for i := 0; i < n; i++ {
		for name, vals := range cols {
			row[name] = vals[i]
		}
		rec, err := domain.ParseRecord(row)
		if err != nil {
			return nil, &domain.DataLoadError{Row: i + 1, Err: err}
		}
		records = append(records, rec)
	}

	return domain.NewDataset(name, records), nil
}
