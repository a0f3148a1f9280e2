package model

const (
	Schema            = "public"
	InvestmentsTable  = "investimentos"
	UserProfilesTable = "user_profiles"
)

// KnownTables lists the mapped tables in name order.
func KnownTables() []string {
	return []string{InvestmentsTable, UserProfilesTable}
}

// All returns the mapped models in creation order; profiles come first
// because investments reference them.
func All() []any {
	return []any{&UserProfile{}, &Investment{}}
}
