package domain

import "sort"

// FilterSpec maps categorical columns to their allowed values.
// A column listed with no values matches no records; a column that is not
// listed is unconstrained.
type FilterSpec struct {
	allowed map[string]map[string]struct{}
}

func NewFilterSpec() FilterSpec {
	return FilterSpec{allowed: map[string]map[string]struct{}{}}
}

// FilterSpecFromMap builds a spec from column -> values. A nil or empty
// slice still constrains the column.
func FilterSpecFromMap(m map[string][]string) FilterSpec {
	s := NewFilterSpec()
	for col, vals := range m {
		s = s.Allow(col, vals...)
	}
	return s
}

// Allow returns a copy of s with col restricted to values (added to any
// values already allowed for col).
func (s FilterSpec) Allow(col string, values ...string) FilterSpec {
	next := s.clone()
	set, ok := next.allowed[col]
	if !ok {
		set = make(map[string]struct{}, len(values))
	}
	for _, v := range values {
		set[v] = struct{}{}
	}
	next.allowed[col] = set
	return next
}

func (s FilterSpec) clone() FilterSpec {
	out := NewFilterSpec()
	for col, set := range s.allowed {
		cp := make(map[string]struct{}, len(set))
		for v := range set {
			cp[v] = struct{}{}
		}
		out.allowed[col] = cp
	}
	return out
}

// Constrains reports whether col is present in the spec.
func (s FilterSpec) Constrains(col string) bool {
	_, ok := s.allowed[col]
	return ok
}

// Permits reports whether value passes the constraint on col.
func (s FilterSpec) Permits(col, value string) bool {
	set, ok := s.allowed[col]
	if !ok {
		return true
	}
	_, ok = set[value]
	return ok
}

// ColumnNames returns the constrained columns, sorted.
func (s FilterSpec) ColumnNames() []string {
	out := make([]string, 0, len(s.allowed))
	for col := range s.allowed {
		out = append(out, col)
	}
	sort.Strings(out)
	return out
}

// Values returns the allowed values for col, sorted.
func (s FilterSpec) Values(col string) []string {
	set := s.allowed[col]
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// IsEmpty is true when no column is constrained.
func (s FilterSpec) IsEmpty() bool { return len(s.allowed) == 0 }
