package constant

// Alert statuses
const (
	AlertStatusOpen        = "Open"
	AlertStatusUnderReview = "Under Review"
	AlertStatusResolved    = "Resolved"
	AlertStatusDismissed   = "Dismissed"
)

// Case statuses
const (
	CaseStatusOpen       = "Open"
	CaseStatusInProgress = "In Progress"
	CaseStatusEscalated  = "Escalated"
	CaseStatusClosed     = "Closed"
)

// Document verification statuses
const (
	DocStatusPending  = "Pending"
	DocStatusVerified = "Verified"
	DocStatusExpired  = "Expired"
	DocStatusRejected = "Rejected"
)

// Risk tiers
const (
	RiskTierHigh   = "High"
	RiskTierMedium = "Medium"
	RiskTierLow    = "Low"
)

// Alert severities, ordered highest first for trend charts.
var AlertSeverities = []string{"Critical", "High", "Medium", "Low"}

// DefaultAnalyst is used when a case note is created without an explicit analyst.
const DefaultAnalyst = "Sarah Chen"

// AlertTransitions maps current status -> action label -> next status.
// The action labels drive the UI buttons; validation only checks reachability.
var AlertTransitions = map[string]map[string]string{
	AlertStatusOpen:        {"Begin Review": AlertStatusUnderReview, "Dismiss": AlertStatusDismissed},
	AlertStatusUnderReview: {"Resolve": AlertStatusResolved, "Dismiss": AlertStatusDismissed},
	AlertStatusResolved:    {"Reopen": AlertStatusOpen},
	AlertStatusDismissed:   {"Reopen": AlertStatusOpen},
}

var CaseTransitions = map[string]map[string]string{
	CaseStatusOpen:       {"Start Work": CaseStatusInProgress, "Escalate": CaseStatusEscalated},
	CaseStatusInProgress: {"Escalate": CaseStatusEscalated, "Close Case": CaseStatusClosed},
	CaseStatusEscalated:  {"Close Case": CaseStatusClosed},
	CaseStatusClosed:     {"Reopen": CaseStatusOpen},
}

var DocumentTransitions = map[string]map[string]string{
	DocStatusPending:  {"Verify": DocStatusVerified, "Reject": DocStatusRejected, "Mark Expired": DocStatusExpired},
	DocStatusVerified: {"Mark Expired": DocStatusExpired},
	DocStatusExpired:  {"Request New": DocStatusPending},
	DocStatusRejected: {"Request New": DocStatusPending},
}

// CanTransition reports whether newStatus is reachable from current in the
// given transition table.
func CanTransition(transitions map[string]map[string]string, current, newStatus string) bool {
	for _, next := range transitions[current] {
		if next == newStatus {
			return true
		}
	}
	return false
}
