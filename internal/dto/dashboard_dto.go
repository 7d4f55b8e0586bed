package dto

type KpiResponse struct {
	ReviewsDueThisMonth int64   `json:"reviews_due_this_month"`
	HighRiskRate        float64 `json:"high_risk_rate"`
	HighRiskCount       int64   `json:"high_risk_count"`
	TotalCustomers      int64   `json:"total_customers"`
	OpenCriticalAlerts  int64   `json:"open_critical_alerts"`
	DocsExpiring30Days  int64   `json:"docs_expiring_30_days"`
}

type RiskDistributionResponse struct {
	Distribution map[string]int64 `json:"distribution"`
	Total        int64            `json:"total"`
}

// AlertTrendEntry holds alert counts per severity for one month. Severity
// keys are capitalised in the payload to match the severity labels used
// everywhere else.
type AlertTrendEntry struct {
	Month    string `json:"month"`
	Year     int    `json:"year"`
	Critical int64  `json:"Critical"`
	High     int64  `json:"High"`
	Medium   int64  `json:"Medium"`
	Low      int64  `json:"Low"`
}

type StatsResponse struct {
	Customers       int64 `json:"customers"`
	Alerts          int64 `json:"alerts"`
	Documents       int64 `json:"documents"`
	Cases           int64 `json:"cases"`
	ActivityEntries int64 `json:"activity_entries"`
	Analysts        int64 `json:"analysts"`
}
