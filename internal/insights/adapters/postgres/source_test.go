package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"customer-insights-service/internal/insights/core/domain"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *sql.NullString:
			if row.values[i] == nil {
				*d = sql.NullString{}
				continue
			}
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = sql.NullString{String: v, Valid: true}
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	calls     int
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.calls++
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return nil, nil
}

var requiredColumns = []string{
	"Region", "Gender", "Preferred_Device", "Signup_Status", "Course_Enrolled",
	"Satisfaction_Score", "Course_Interested", "Ad_Channel", "Plan_Type",
	"Course_Completion_Status", "Interest_Score", "Referral_Count",
	"Signup_Date", "Monthly_Fee",
}

func columnRows(names ...string) *fakeRowScanner {
	rs := &fakeRowScanner{}
	for _, n := range names {
		rs.rows = append(rs.rows, fakeRow{values: []any{n}})
	}
	return rs
}

func customerRow(satisfaction string, completion any) fakeRow {
	return fakeRow{values: []any{
		"North", "Male", "Mobile", "Yes", "Yes",
		satisfaction, "AI", "YouTube", "Basic",
		completion, "70", "2", "2024-03-01", "19.99",
	}}
}

func tableDB(t *testing.T, header []string, data *fakeRowScanner) *fakeDB {
	t.Helper()
	return &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if strings.Contains(query, "information_schema.columns") {
				return columnRows(header...), nil
			}
			return data, nil
		},
	}
}

// ------------------------------------------------------------
// LOAD
// ------------------------------------------------------------

func TestDatasetSource_Load(t *testing.T) {
	data := &fakeRowScanner{rows: []fakeRow{
		customerRow("8", "Completed"),
		customerRow("6", nil),
	}}
	db := tableDB(t, requiredColumns, data)

	ds, err := NewDatasetSource(db, "customers", true).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.calls != 2 {
		t.Fatalf("expected 2 queries, got %d", db.calls)
	}
	if !strings.Contains(db.lastQuery, `"Satisfaction_Score"::text`) || !strings.Contains(db.lastQuery, `FROM "customers"`) {
		t.Fatalf("unexpected select: %s", db.lastQuery)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", ds.Len())
	}
	if ds.Source() != "postgres:customers" {
		t.Fatalf("unexpected source %q", ds.Source())
	}
	if got := ds.All().At(1).CourseCompletionStatus; got != domain.NotApplicable {
		t.Fatalf("expected NULL to load as Not Applicable, got %q", got)
	}
}

func TestDatasetSource_SchemaQualifiedTable(t *testing.T) {
	data := &fakeRowScanner{rows: []fakeRow{customerRow("8", "Completed")}}
	var columnArgs []any
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if strings.Contains(query, "information_schema.columns") {
				columnArgs = args
				return columnRows(requiredColumns...), nil
			}
			return data, nil
		},
	}

	if _, err := NewDatasetSource(db, "analytics.customers", true).Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(columnArgs) != 2 || columnArgs[0] != "customers" || columnArgs[1] != "analytics" {
		t.Fatalf("unexpected information_schema args: %v", columnArgs)
	}
	if !strings.Contains(db.lastQuery, `FROM "analytics"."customers"`) {
		t.Fatalf("unexpected select: %s", db.lastQuery)
	}
}

func TestDatasetSource_IgnoresExtraColumnsWhenNotStrict(t *testing.T) {
	data := &fakeRowScanner{rows: []fakeRow{customerRow("8", "Completed")}}
	header := append(append([]string{}, requiredColumns...), "customer_id")
	db := tableDB(t, header, data)

	ds, err := NewDatasetSource(db, "customers", false).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(db.lastQuery, "customer_id") {
		t.Fatalf("extra column should not be selected: %s", db.lastQuery)
	}
	if ds.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", ds.Len())
	}
}

// ------------------------------------------------------------
// FAILURES
// ------------------------------------------------------------

func TestDatasetSource_UnrecognizedColumnStrict(t *testing.T) {
	header := append(append([]string{}, requiredColumns...), "customer_id")
	db := tableDB(t, header, &fakeRowScanner{})

	_, err := NewDatasetSource(db, "customers", true).Load(context.Background())
	if !errors.Is(err, domain.ErrUnrecognizedColumn) {
		t.Fatalf("expected unrecognized column error, got %v", err)
	}
	if db.calls != 1 {
		t.Fatalf("expected no select after header failure, got %d queries", db.calls)
	}
}

func TestDatasetSource_MissingTable(t *testing.T) {
	db := tableDB(t, nil, &fakeRowScanner{})

	_, err := NewDatasetSource(db, "customers", true).Load(context.Background())
	if !errors.Is(err, domain.ErrEmptySource) || !errors.Is(err, domain.ErrDataLoad) {
		t.Fatalf("expected empty source load error, got %v", err)
	}
}

func TestDatasetSource_BadRow(t *testing.T) {
	data := &fakeRowScanner{rows: []fakeRow{
		customerRow("8", "Completed"),
		customerRow("high", "Completed"),
	}}
	db := tableDB(t, requiredColumns, data)

	_, err := NewDatasetSource(db, "customers", true).Load(context.Background())
	if !errors.Is(err, domain.ErrInvalidNumber) {
		t.Fatalf("expected invalid number, got %v", err)
	}
	var le *domain.DataLoadError
	if !errors.As(err, &le) || le.Row != 2 {
		t.Fatalf("expected row 2 in load error, got %v", err)
	}
}

func TestDatasetSource_DBError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db failure")
		},
	}

	ds, err := NewDatasetSource(db, "customers", true).Load(context.Background())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "db failure") {
		t.Fatalf("expected db failure, got %v", err)
	}
	if ds != nil {
		t.Fatalf("expected nil dataset on error")
	}
}

// ------------------------------------------------------------
// SNAPSHOT
// ------------------------------------------------------------

type snapshotDB struct {
	*fakeDB
	snapshots int
}

func (s *snapshotDB) Snapshot(ctx context.Context, fn func(DB) error) error {
	s.snapshots++
	return fn(s.fakeDB)
}

func TestDatasetSource_UsesSnapshotWhenAvailable(t *testing.T) {
	data := &fakeRowScanner{rows: []fakeRow{customerRow("8", "Completed")}}
	db := &snapshotDB{fakeDB: tableDB(t, requiredColumns, data)}

	ds, err := NewDatasetSource(db, "customers", true).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.snapshots != 1 {
		t.Fatalf("expected one snapshot, got %d", db.snapshots)
	}
	if db.calls != 2 {
		t.Fatalf("expected both queries inside the snapshot, got %d", db.calls)
	}
	if ds.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", ds.Len())
	}
}
