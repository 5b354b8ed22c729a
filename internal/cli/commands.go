package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"customer-insights-service/internal/insights/adapters/export"
	"customer-insights-service/internal/insights/core/domain"
	"customer-insights-service/internal/insights/core/usecase"
)

func (a *app) summaryCmd() *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Total count, signup rate, enrollment rate and mean satisfaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.filterArgs()
			if err != nil {
				return err
			}
			s, err := a.uc.Summary(cmd.Context(), usecase.SummaryInput{Filters: f, Scope: scope})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			title(out, "Summary")
			table(out, []string{"Metric", "Value"}, [][]string{
				{"Total customers", strconv.Itoa(s.TotalCount)},
				{"Signup rate", pct(s.SignupRate)},
				{"Enrollment rate", pct(s.EnrollmentRate)},
				{"Mean satisfaction", num(s.MeanSatisfaction)},
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", usecase.ScopeView, "view or dataset")
	return cmd
}

func (a *app) valuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values <column>",
		Short: "Distinct values of a column over the whole dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.uc.DistinctValues(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rows := make([][]string, len(values))
			for i, v := range values {
				rows[i] = []string{v}
			}
			out := cmd.OutOrStdout()
			title(out, args[0])
			table(out, []string{"Value"}, rows)
			return nil
		},
	}
}

func (a *app) groupCmd() *cobra.Command {
	var stats, dropMissing bool
	cmd := &cobra.Command{
		Use:   "group <group-column> <numeric-column>",
		Short: "Mean (or box-plot statistics with --stats) of a numeric column per group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.filterArgs()
			if err != nil {
				return err
			}
			in := usecase.GroupedInput{Filters: f, GroupBy: args[0], Value: args[1], DropMissing: dropMissing}
			out := cmd.OutOrStdout()

			if !stats {
				groups, err := a.uc.GroupedMean(cmd.Context(), in)
				if err != nil {
					return err
				}
				rows := make([][]string, len(groups))
				for i, g := range groups {
					rows[i] = []string{g.Key, strconv.Itoa(g.Count), num(g.Mean)}
				}
				title(out, fmt.Sprintf("Mean %s by %s", args[1], args[0]))
				table(out, []string{args[0], "Count", "Mean"}, rows)
				return nil
			}

			groups, err := a.uc.Distribution(cmd.Context(), in)
			if err != nil {
				return err
			}
			rows := make([][]string, len(groups))
			for i, g := range groups {
				rows[i] = []string{g.Key, strconv.Itoa(g.Count),
					num(g.Min), num(g.Q1), num(g.Median), num(g.Q3), num(g.Max), num(g.Mean)}
			}
			title(out, fmt.Sprintf("%s by %s", args[1], args[0]))
			table(out, []string{args[0], "Count", "Min", "Q1", "Median", "Q3", "Max", "Mean"}, rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "show min, quartiles, max and mean")
	cmd.Flags().BoolVar(&dropMissing, "drop-missing", false, "skip records whose group is Not Applicable (with --stats)")
	return cmd
}

func (a *app) crosstabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crosstab <row-column> <column>",
		Short: "Record counts for every observed value pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.filterArgs()
			if err != nil {
				return err
			}
			ct, err := a.uc.CrossTab(cmd.Context(), usecase.CrossTabInput{Filters: f, Row: args[0], Column: args[1]})
			if err != nil {
				return err
			}

			rowKeys, colKeys := crossKeys(ct)
			rows := make([][]string, len(rowKeys))
			for i, r := range rowKeys {
				rows[i] = make([]string, len(colKeys)+1)
				rows[i][0] = r
				for j, c := range colKeys {
					rows[i][j+1] = strconv.Itoa(ct[domain.Pair{Row: r, Col: c}])
				}
			}
			out := cmd.OutOrStdout()
			title(out, fmt.Sprintf("%s x %s", args[0], args[1]))
			table(out, append([]string{args[0]}, colKeys...), rows)
			return nil
		},
	}
}

func crossKeys(ct domain.CrossTab) (rows, cols []string) {
	rs, cs := map[string]bool{}, map[string]bool{}
	for p := range ct {
		if !rs[p.Row] {
			rs[p.Row] = true
			rows = append(rows, p.Row)
		}
		if !cs[p.Col] {
			cs[p.Col] = true
			cols = append(cols, p.Col)
		}
	}
	sort.Strings(rows)
	sort.Strings(cols)
	return rows, cols
}

func (a *app) corrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corr [numeric-column...]",
		Short: "Pearson correlation matrix (all numeric columns by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.filterArgs()
			if err != nil {
				return err
			}
			m, err := a.uc.Correlation(cmd.Context(), usecase.CorrelationInput{Filters: f, Columns: args})
			if err != nil {
				return err
			}
			grid := m.Grid()
			rows := make([][]string, len(grid))
			for i, line := range grid {
				rows[i] = make([]string, len(line)+1)
				rows[i][0] = m.Columns[i]
				for j, v := range line {
					rows[i][j+1] = num(v)
				}
			}
			out := cmd.OutOrStdout()
			title(out, "Correlation")
			table(out, append([]string{""}, m.Columns...), rows)
			return nil
		},
	}
}

func (a *app) histCmd() *cobra.Command {
	var bins int
	cmd := &cobra.Command{
		Use:   "hist <numeric-column>",
		Short: "Equal-width histogram of a numeric column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.filterArgs()
			if err != nil {
				return err
			}
			h, err := a.uc.Histogram(cmd.Context(), usecase.HistogramInput{Filters: f, Column: args[0], Bins: bins})
			if err != nil {
				return err
			}
			rows := make([][]string, len(h.Bins))
			for i, b := range h.Bins {
				rows[i] = []string{num(b.Lower), num(b.Upper), strconv.Itoa(b.Count)}
			}
			out := cmd.OutOrStdout()
			title(out, "Distribution of "+args[0])
			table(out, []string{"From", "To", "Count"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&bins, "bins", usecase.DefaultBins, "number of bins (1-100)")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var format, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered records as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.filterArgs()
			if err != nil {
				return err
			}
			ft, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			view, err := a.uc.View(cmd.Context(), f)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				return export.Write(cmd.OutOrStdout(), ft, view)
			}
			if err := a.writeFile(outPath, ft, view); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d records to %s\n", view.Len(), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "csv or xlsx")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	return cmd
}

func (a *app) writeFile(path string, ft export.Format, view domain.View) error {
	file, err := a.create(path)
	if err != nil {
		return err
	}
	if err := export.Write(file, ft, view); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
