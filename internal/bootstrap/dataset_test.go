package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-insights-service/internal/config"
	"customer-insights-service/internal/insights/core/domain"
)

const sampleCSV = `Region,Gender,Preferred_Device,Signup_Status,Course_Enrolled,Satisfaction_Score,Course_Interested,Ad_Channel,Plan_Type,Course_Completion_Status,Interest_Score,Referral_Count,Signup_Date,Monthly_Fee
North,Male,Mobile,Yes,Yes,8,AI,YouTube,Basic,Completed,72.5,1,2024-01-10,19.99
South,Female,Laptop,No,No,5,Web Dev,Google,Pro,,40,0,Not Applicable,0
`

type fakeObserver struct {
	source  string
	records int
	called  bool
}

func (f *fakeObserver) ObserveDatasetLoad(source string, records int, _ time.Duration) {
	f.called = true
	f.source = source
	f.records = records
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestLoadDataset_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	obs := &fakeObserver{}
	strict := true
	ds, err := LoadDataset(context.Background(), config.DatasetConfig{
		Source:        config.SourceCSV,
		Path:          path,
		StrictColumns: &strict,
	}, discard(), obs)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.True(t, obs.called)
	assert.Equal(t, path, obs.source)
	assert.Equal(t, 2, obs.records)
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(context.Background(), config.DatasetConfig{
		Source: config.SourceCSV,
		Path:   filepath.Join(t.TempDir(), "missing.csv"),
	}, discard(), nil)
	assert.True(t, errors.Is(err, domain.ErrDataLoad))
}

func TestOpenSource_Unknown(t *testing.T) {
	_, _, err := OpenSource(context.Background(), config.DatasetConfig{Source: "parquet"})
	assert.ErrorContains(t, err, "unknown dataset source")
}
