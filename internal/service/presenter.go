package service

import (
	"strings"
	"time"

	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/entity"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return formatDate(*t)
}

func formatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	riskFactors := c.RiskFactors
	if riskFactors == nil {
		riskFactors = []string{}
	}
	return &dto.CustomerResponse{
		Id:              c.Id,
		CustomerId:      c.CustomerId,
		LegalName:       c.LegalName,
		BusinessType:    c.BusinessType,
		Jurisdiction:    c.Jurisdiction,
		RiskTier:        c.RiskTier,
		KycStatus:       c.KycStatus,
		OnboardingDate:  formatDate(c.OnboardingDate),
		LastReviewDate:  formatDatePtr(c.LastReviewDate),
		NextReviewDue:   formatDatePtr(c.NextReviewDue),
		AssignedAnalyst: c.AssignedAnalyst,
		RiskFactors:     riskFactors,
	}
}

func toAlertResponse(a *entity.Alert) *dto.AlertResponse {
	res := &dto.AlertResponse{
		Id:              a.Id,
		AlertId:         a.AlertId,
		AlertType:       a.AlertType,
		Severity:        a.Severity,
		Status:          a.Status,
		CreatedDate:     formatDate(a.CreatedDate),
		AssignedAnalyst: a.AssignedAnalyst,
		Description:     a.Description,
	}
	if a.Customer != nil {
		res.CustomerId = a.Customer.CustomerId
		res.CustomerName = a.Customer.LegalName
	}
	return res
}

func toCaseResponse(c *entity.Case) *dto.CaseResponse {
	res := &dto.CaseResponse{
		Id:              c.Id,
		CaseId:          c.CaseId,
		CaseType:        c.CaseType,
		Priority:        c.Priority,
		Status:          c.Status,
		OpenedDate:      formatDate(c.OpenedDate),
		DueDate:         formatDatePtr(c.DueDate),
		AssignedAnalyst: c.AssignedAnalyst,
	}
	if c.Customer != nil {
		res.CustomerId = c.Customer.CustomerId
		res.CustomerName = c.Customer.LegalName
	}
	return res
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	res := &dto.DocumentResponse{
		Id:                 d.Id,
		DocumentId:         d.DocumentId,
		DocType:            d.DocType,
		IssueDate:          formatDate(d.IssueDate),
		ExpiryDate:         formatDatePtr(d.ExpiryDate),
		VerificationStatus: d.VerificationStatus,
	}
	if d.Customer != nil {
		res.CustomerId = d.Customer.CustomerId
		res.CustomerName = d.Customer.LegalName
	}
	return res
}

func toActivityLogResponse(e *entity.ActivityLog) *dto.ActivityLogResponse {
	return &dto.ActivityLogResponse{
		Id:          e.Id,
		Action:      e.Action,
		AnalystName: e.AnalystName,
		CreatedAt:   formatTimestamp(e.CreatedAt),
	}
}

func toCaseNoteResponse(n *entity.CaseNote) *dto.CaseNoteResponse {
	return &dto.CaseNoteResponse{
		Id:          n.Id,
		Content:     n.Content,
		AnalystName: n.AnalystName,
		CreatedAt:   formatTimestamp(n.CreatedAt),
	}
}

// splitCSV turns a comma-separated multi-select query param into trimmed,
// non-empty values.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	values := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	return values
}
