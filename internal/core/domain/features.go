package domain

import "slices"

// FeatureRow binds a rule to the feature names stubs matching that rule must
// declare.
type FeatureRow struct {
	Rule     Rule
	Features []string
}

// FeatureTable maps package names to the feature set their stubs advertise.
// Replaced packages are compiled against by the rest of the dependency graph,
// and that graph may enable arbitrary features on them; a stub that does not
// declare those features fails resolution. The table is ordered, and a name
// matching several rows receives the union of their features.
type FeatureTable struct {
	rows []FeatureRow
}

// NewFeatureTable builds a table from its rows.
func NewFeatureTable(rows []FeatureRow) FeatureTable {
	return FeatureTable{rows: rows}
}

// For returns the features a stub for the given name must declare, sorted
// and deduplicated. A name matching no row gets nil, which callers render as
// an empty feature section.
func (t FeatureTable) For(name string) []string {
	var features []string
	for _, row := range t.rows {
		if row.Rule.Matches(name) {
			features = append(features, row.Features...)
		}
	}
	if features == nil {
		return nil
	}
	slices.Sort(features)
	return slices.Compact(features)
}

// Empty reports whether the table has no rows.
func (t FeatureTable) Empty() bool {
	return len(t.rows) == 0
}
