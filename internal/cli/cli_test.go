package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-insights-service/internal/insights/core/domain"
	"customer-insights-service/internal/insights/core/usecase"
)

func customer(region, gender, signup, enrolled string, satisfaction, interest float64) domain.Record {
	return domain.Record{
		Region:                 region,
		Gender:                 gender,
		SignupStatus:           signup,
		CourseEnrolled:         enrolled,
		CourseCompletionStatus: domain.NotApplicable,
		EducationLevel:         domain.NotApplicable,
		SatisfactionScore:      satisfaction,
		InterestScore:          interest,
		MonthlyFee:             20,
	}
}

func staticLoader(ds *domain.Dataset) DatasetLoader {
	return func(context.Context, string, io.Writer) (*domain.Dataset, error) { return ds, nil }
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ds := domain.NewDataset("test", []domain.Record{
		customer("North", "Male", "Yes", "Yes", 8, 70),
		customer("North", "Female", "No", "No", 6, 50),
		customer("South", "Female", "Yes", "Yes", 4, 30),
	})
	cmd := NewRootCommand(staticLoader(ds))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseFilters(t *testing.T) {
	f, err := parseFilters([]string{"Region=North, South", "Gender=", "Region=East"})
	require.NoError(t, err)
	assert.Equal(t, []string{"North", "South", "East"}, f["Region"])

	gender, ok := f["Gender"]
	assert.True(t, ok)
	assert.Empty(t, gender)

	_, err = parseFilters([]string{"Region"})
	assert.Error(t, err)

	f, err = parseFilters(nil)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestSummaryCommand(t *testing.T) {
	out, err := run(t, "summary", "--filter", "Region=North")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "7.000")
}

func TestSummaryCommand_EmptyFilterShowsNA(t *testing.T) {
	out, err := run(t, "summary", "--filter", "Region=")
	require.NoError(t, err)
	assert.Contains(t, out, "n/a")
}

func TestValuesCommand(t *testing.T) {
	out, err := run(t, "values", "Region")
	require.NoError(t, err)
	assert.Contains(t, out, "North")
	assert.Contains(t, out, "South")
}

func TestGroupCommand(t *testing.T) {
	out, err := run(t, "group", "Gender", "Satisfaction_Score")
	require.NoError(t, err)
	assert.Contains(t, out, "Female")
	assert.Contains(t, out, "5.000")

	out, err = run(t, "group", "Region", "Satisfaction_Score", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Median")
}

func TestCrosstabCommand(t *testing.T) {
	out, err := run(t, "crosstab", "Gender", "Course_Enrolled")
	require.NoError(t, err)
	assert.Contains(t, out, "Gender x Course_Enrolled")
	assert.Contains(t, out, "Female")
}

func TestCorrCommand(t *testing.T) {
	out, err := run(t, "corr", "Satisfaction_Score", "Interest_Score")
	require.NoError(t, err)
	assert.Contains(t, out, "1.000")
}

func TestHistCommand_InvalidBins(t *testing.T) {
	_, err := run(t, "hist", "Satisfaction_Score", "--bins", "500")
	assert.True(t, errors.Is(err, usecase.ErrInvalidBins))
}

func TestGroupCommand_UnknownColumn(t *testing.T) {
	_, err := run(t, "group", "Country", "Satisfaction_Score")
	assert.True(t, errors.Is(err, usecase.ErrUnknownColumn))
}

func TestExportCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "north.csv")
	_, err := run(t, "export", "--filter", "Region=North", "--out", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	for _, r := range rows[1:] {
		assert.Equal(t, "North", r[0])
	}
}

func TestExportCommand_Stdout(t *testing.T) {
	out, err := run(t, "export")
	require.NoError(t, err)
	assert.Equal(t, 4, len(strings.Split(strings.TrimSpace(out), "\n")))
}

func TestLoaderError(t *testing.T) {
	cmd := NewRootCommand(func(context.Context, string, io.Writer) (*domain.Dataset, error) {
		return nil, &domain.DataLoadError{Source: "x.csv", Err: domain.ErrEmptySource}
	})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"summary"})
	err := cmd.Execute()
	assert.True(t, errors.Is(err, domain.ErrDataLoad))
}

type failingClose struct {
	bytes.Buffer
}

func (f *failingClose) Close() error { return errors.New("disk full") }

func TestExportCommand_CloseErrorFails(t *testing.T) {
	ds := domain.NewDataset("test", []domain.Record{customer("North", "Male", "Yes", "Yes", 8, 70)})
	file := &failingClose{}
	cmd := newRootCommand(staticLoader(ds), func(string) (io.WriteCloser, error) { return file, nil })
	var stderr bytes.Buffer
	cmd.SetOut(io.Discard)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"export", "--out", "north.csv"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NotContains(t, stderr.String(), "wrote")
	assert.NotZero(t, file.Len())
}
