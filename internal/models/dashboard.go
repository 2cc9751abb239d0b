package models

// ModelUsage is one row of the most-prescribed insole models ranking.
type ModelUsage struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DashboardStats is the admin analytics snapshot.
type DashboardStats struct {
	OrdersByStatus  map[string]int64 `json:"orders_by_status"`
	RevenueCents    int64            `json:"revenue_cents"`
	TopInsoleModels []ModelUsage     `json:"top_insole_models"`
	NewPatients     int64            `json:"new_patients"`
	PeriodDays      int              `json:"period_days"`
}
