// Package engine holds the pure filter and aggregate functions behind every
// insights request. Nothing here performs I/O or keeps state between calls;
// callers pass the dataset or view explicitly.
package engine

import (
	"sort"
	"strconv"

	"customer-insights-service/internal/insights/core/domain"
)

// DistinctValues returns the distinct values of col over the whole dataset,
// never a filtered view, so filter menus do not shrink as filters change.
func DistinctValues(ds *domain.Dataset, col string) []string {
	seen := make(map[string]struct{})
	all := ds.All()
	for i := 0; i < all.Len(); i++ {
		v, ok := all.At(i).Text(col)
		if !ok {
			return nil
		}
		seen[v] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// DefaultFilterSpec allows every observed value of every filterable column.
// Applying it returns the dataset unchanged.
func DefaultFilterSpec(ds *domain.Dataset) domain.FilterSpec {
	spec := domain.NewFilterSpec()
	for _, col := range domain.FilterableColumns() {
		spec = spec.Allow(col, DistinctValues(ds, col)...)
	}
	return spec
}

// ApplyFilter keeps records whose value for every constrained column is
// allowed. Columns are AND-combined; the result may be empty.
func ApplyFilter(view domain.View, spec domain.FilterSpec) domain.View {
	cols := spec.ColumnNames()
	if len(cols) == 0 {
		return view
	}
	return view.Where(func(r domain.Record) bool {
		for _, col := range cols {
			v, _ := r.Text(col)
			if !spec.Permits(col, v) {
				return false
			}
		}
		return true
	})
}

// DropMissing removes records holding the Not Applicable sentinel in col.
func DropMissing(view domain.View, col string) domain.View {
	return view.Where(func(r domain.Record) bool {
		v, ok := r.Text(col)
		return ok && v != domain.NotApplicable
	})
}

// sortKeys orders numerically when every key is a number, else lexically.
func sortKeys(keys []string) {
	nums := make(map[string]float64, len(keys))
	for _, k := range keys {
		f, err := strconv.ParseFloat(k, 64)
		if err != nil {
			sort.Strings(keys)
			return
		}
		nums[k] = f
	}
	sort.Slice(keys, func(i, j int) bool { return nums[keys[i]] < nums[keys[j]] })
}
