package section

// TableBuilderOption is a functional option for configuring a Table.
type TableBuilderOption func(*table)

// WithGroups sets the major groups referenced by the entries' Group indices.
//
// Parameters:
//   - groups: groups ordered by index
//
// Returns:
//   - TableBuilderOption: functional option to set the groups
func WithGroups(groups ...Group) TableBuilderOption {
	return func(t *table) {
		t.groups = append([]Group(nil), groups...)
	}
}
