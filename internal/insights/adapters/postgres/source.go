package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"customer-insights-service/internal/insights/core/domain"
	"customer-insights-service/internal/insights/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// DatasetSource reads every row of a customer table. Cells are cast to text
// in SQL so typing follows the same rules as the CSV source.
type DatasetSource struct {
	db     DB
	table  string
	strict bool
}

var _ ports.DatasetSource = (*DatasetSource)(nil)

func NewDatasetSource(db DB, table string, strict bool) *DatasetSource {
	return &DatasetSource{db: db, table: table, strict: strict}
}

func (s *DatasetSource) name() string { return "postgres:" + s.table }

func (s *DatasetSource) Load(ctx context.Context) (*domain.Dataset, error) {
	var ds *domain.Dataset
	load := func(db DB) error {
		var err error
		ds, err = s.load(ctx, db)
		return err
	}

	var err error
	if sn, ok := s.db.(Snapshotter); ok {
		err = sn.Snapshot(ctx, load)
	} else {
		err = load(s.db)
	}
	if err != nil {
		return nil, s.loadErr(0, err)
	}
	return ds, nil
}

func (s *DatasetSource) load(ctx context.Context, db DB) (*domain.Dataset, error) {
	header, err := s.tableColumns(ctx, db)
	if err != nil {
		return nil, err
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("table %s: %w", s.table, domain.ErrEmptySource)
	}
	if err := domain.CheckHeader(header, s.strict); err != nil {
		return nil, err
	}

	var selected []string
	for _, h := range header {
		if _, ok := domain.LookupColumn(h); ok {
			selected = append(selected, h)
		}
	}

	records, err := s.queryRecords(ctx, db, selected)
	if err != nil {
		return nil, err
	}
	return domain.NewDataset(s.name(), records), nil
}

func (s *DatasetSource) tableColumns(ctx context.Context, db DB) ([]string, error) {
	schema, table := splitTable(s.table)

	where := "table_name = $1"
	args := []any{table}
	if schema != "" {
		where += " AND table_schema = $2"
		args = append(args, schema)
	} else {
		where += " AND table_schema = current_schema()"
	}

	query := `
SELECT column_name
FROM information_schema.columns
WHERE ` + where + `
ORDER BY ordinal_position`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

func (s *DatasetSource) queryRecords(ctx context.Context, db DB, cols []string) ([]domain.Record, error) {
	exprs := make([]string, len(cols))
	for i, c := range cols {
		exprs[i] = pq.QuoteIdentifier(c) + "::text"
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(exprs, ", "), quoteTable(s.table))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cells := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range cells {
		dest[i] = &cells[i]
	}

	var records []domain.Record
	raw := make(map[string]string, len(cols))
	for n := 1; rows.Next(); n++ {
		if err := rows.Scan(dest...); err != nil {
			return nil, s.loadErr(n, err)
		}
		for i, c := range cols {
			// NULL reads as empty, which the parser treats as missing.
			raw[c] = cells[i].String
		}
		rec, err := domain.ParseRecord(raw)
		if err != nil {
			return nil, s.loadErr(n, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *DatasetSource) loadErr(row int, err error) error {
	if le, ok := err.(*domain.DataLoadError); ok {
		le.Source = s.name()
		if row > 0 {
			le.Row = row
		}
		return le
	}
	return &domain.DataLoadError{Source: s.name(), Row: row, Err: err}
}

func splitTable(table string) (schema, name string) {
	if i := strings.LastIndex(table, "."); i >= 0 {
		return table[:i], table[i+1:]
	}
	return "", table
}

func quoteTable(table string) string {
	schema, name := splitTable(table)
	if schema == "" {
		return pq.QuoteIdentifier(name)
	}
	return pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(name)
}
