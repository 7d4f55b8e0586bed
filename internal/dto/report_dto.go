package dto

type QuarterlyMetric struct {
	Q1 float64 `json:"Q1"`
	Q2 float64 `json:"Q2"`
	Q3 float64 `json:"Q3"`
	Q4 float64 `json:"Q4"`
}

type ResolutionRateEntry struct {
	Month          string  `json:"month"`
	Total          int64   `json:"total"`
	Resolved       int64   `json:"resolved"`
	ResolutionRate float64 `json:"resolution_rate"`
	WithinSla      float64 `json:"within_sla"`
}

type SlaAdherenceEntry struct {
	Quarter   string  `json:"quarter"`
	AlertsSla float64 `json:"alerts_sla"`
	CasesSla  float64 `json:"cases_sla"`
	Overall   float64 `json:"overall"`
}
