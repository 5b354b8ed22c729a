// Package cli implements the insights terminal client: the same queries as
// the HTTP API, rendered as tables.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"customer-insights-service/internal/bootstrap"
	"customer-insights-service/internal/config"
	"customer-insights-service/internal/insights/core/domain"
	"customer-insights-service/internal/insights/core/usecase"
	"customer-insights-service/internal/platform/logging"
)

// DatasetLoader produces the dataset a command runs against.
type DatasetLoader func(ctx context.Context, configPath string, stderr io.Writer) (*domain.Dataset, error)

type app struct {
	configPath string
	filters    []string

	load   DatasetLoader
	create func(path string) (io.WriteCloser, error)
	uc     *usecase.QueryInsightsUseCase
}

// NewRootCommand builds the command tree. A nil loader reads the dataset
// the way the API server does.
func NewRootCommand(load DatasetLoader) *cobra.Command {
	if load == nil {
		load = LoadFromConfig
	}
	return newRootCommand(load, func(path string) (io.WriteCloser, error) { return os.Create(path) })
}

func newRootCommand(load DatasetLoader, create func(string) (io.WriteCloser, error)) *cobra.Command {
	a := &app{load: load, create: create}

	root := &cobra.Command{
		Use:           "insights",
		Short:         "Query the customer dataset from the terminal",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.load(cmd.Context(), a.configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.uc = usecase.NewQueryInsightsUseCase(ds)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringArrayVarP(&a.filters, "filter", "f", nil,
		"column filter as Column=v1,v2 (repeatable; Column= matches nothing)")

	root.AddCommand(
		a.summaryCmd(),
		a.valuesCmd(),
		a.groupCmd(),
		a.crosstabCmd(),
		a.corrCmd(),
		a.histCmd(),
		a.exportCmd(),
	)
	return root
}

// LoadFromConfig loads config, logs to stderr and reads the dataset once.
func LoadFromConfig(ctx context.Context, configPath string, stderr io.Writer) (*domain.Dataset, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	return bootstrap.LoadDataset(ctx, cfg.Dataset, logger, nil)
}

// parseFilters turns repeated Column=v1,v2 flags into Filters. Values for
// the same column accumulate.
func parseFilters(raw []string) (usecase.Filters, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	f := usecase.Filters{}
	for _, r := range raw {
		col, vals, ok := strings.Cut(r, "=")
		col = strings.TrimSpace(col)
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid filter %q, want Column=v1,v2", r)
		}
		if _, seen := f[col]; !seen {
			f[col] = []string{}
		}
		for _, v := range strings.Split(vals, ",") {
			if v = strings.TrimSpace(v); v != "" {
				f[col] = append(f[col], v)
			}
		}
	}
	return f, nil
}

func (a *app) filterArgs() (usecase.Filters, error) {
	return parseFilters(a.filters)
}
