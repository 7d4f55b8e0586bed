package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"sentinel-kyc-be/internal/constant"
	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/repository/specification"
	"sentinel-kyc-be/internal/repository/unitofwork"
	"sentinel-kyc-be/pkg/keystore"
	"sentinel-kyc-be/pkg/llm"
)

// ErrNoAPIKey is surfaced on the stream when no credential is configured.
var ErrNoAPIKey = errors.New("AI service unavailable: ANTHROPIC_API_KEY not set")

// PromptRequest is a fully rendered prompt ready to stream.
type PromptRequest struct {
	System string
	Prompt string
}

type IAiService interface {
	KeyStatus() *dto.KeyStatusResponse
	SetKey(ctx context.Context, apiKey string) error
	DeleteKey() error

	RiskAssessmentPrompt(ctx context.Context, customerId string) (*PromptRequest, error)
	AlertTriagePrompt(ctx context.Context, alertId string) (*PromptRequest, error)
	CaseSummaryPrompt(ctx context.Context, caseId string) (*PromptRequest, error)
	ComplianceNarrativePrompt(ctx context.Context) (*PromptRequest, error)

	Stream(ctx context.Context, req *PromptRequest, onText func(text string) error) error
}

type aiService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.LLMProvider
	keys       *keystore.Store
}

func NewAiService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.LLMProvider,
	keys *keystore.Store,
) IAiService {
	return &aiService{
		uowFactory: uowFactory,
		provider:   provider,
		keys:       keys,
	}
}

// --- Key Management ---

func (s *aiService) KeyStatus() *dto.KeyStatusResponse {
	return &dto.KeyStatusResponse{Configured: s.keys.Configured()}
}

func (s *aiService) SetKey(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return serverutils.BadRequest("API key cannot be empty")
	}
	if err := s.provider.ValidateKey(ctx, apiKey); err != nil {
		return serverutils.BadRequest("Invalid API key")
	}
	return s.keys.Save(apiKey)
}

func (s *aiService) DeleteKey() error {
	return s.keys.Delete()
}

// --- Streaming ---

func (s *aiService) Stream(ctx context.Context, req *PromptRequest, onText func(text string) error) error {
	apiKey := s.keys.Read()
	if apiKey == "" {
		return ErrNoAPIKey
	}

	err := s.provider.ChatStream(ctx,
		[]llm.Message{{Role: "user", Content: req.Prompt}},
		onText,
		llm.WithSystem(req.System),
		llm.WithAPIKey(apiKey),
	)
	if err == nil {
		return nil
	}
	if errors.Is(err, llm.ErrInvalidAPIKey) {
		return llm.ErrInvalidAPIKey
	}
	return fmt.Errorf("AI service unavailable: %v", err)
}

// --- Prompt Builders ---

func (s *aiService) RiskAssessmentPrompt(ctx context.Context, customerId string) (*PromptRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByCustomerCode{Code: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, serverutils.NotFound("Customer not found")
	}

	alerts, err := uow.AlertRepository().FindAll(ctx, specification.ByCustomerID{CustomerID: customer.Id})
	if err != nil {
		return nil, err
	}
	documents, err := uow.DocumentRepository().FindAll(ctx, specification.ByCustomerID{CustomerID: customer.Id})
	if err != nil {
		return nil, err
	}
	cases, err := uow.CaseRepository().FindAll(ctx, specification.ByCustomerID{CustomerID: customer.Id})
	if err != nil {
		return nil, err
	}

	alertLines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		alertLines = append(alertLines, fmt.Sprintf("  - %s: %s (Severity: %s, Status: %s) - %s",
			a.AlertId, a.AlertType, a.Severity, a.Status, truncate(a.Description, 100)))
	}
	alertData := joinOrDefault(alertLines, "  No alerts")

	docLines := make([]string, 0, len(documents))
	for _, d := range documents {
		docLines = append(docLines, fmt.Sprintf("  - %s: %s (Status: %s, Expiry: %s)",
			d.DocumentId, d.DocType, d.VerificationStatus, promptDatePtr(d.ExpiryDate)))
	}
	docData := joinOrDefault(docLines, "  No documents")

	caseLines := make([]string, 0, len(cases))
	for _, c := range cases {
		caseLines = append(caseLines, fmt.Sprintf("  - %s: %s (Priority: %s, Status: %s)",
			c.CaseId, c.CaseType, c.Priority, c.Status))
	}
	caseData := joinOrDefault(caseLines, "  No cases")

	riskFactors := "None identified"
	if len(customer.RiskFactors) > 0 {
		riskFactors = strings.Join(customer.RiskFactors, ", ")
	}

	prompt := fmt.Sprintf(`Analyze the following KYC customer profile and generate a comprehensive risk assessment.

CUSTOMER PROFILE:
- Customer ID: %s
- Legal Name: %s
- Business Type: %s
- Jurisdiction: %s
- Current Risk Tier: %s
- KYC Status: %s
- Onboarding Date: %s
- Last Review: %s
- Next Review Due: %s
- Assigned Analyst: %s
- Risk Factors: %s

ALERT HISTORY:
%s

DOCUMENT STATUS:
%s

CASE HISTORY:
%s

Generate a structured risk assessment with these exact sections. Use markdown headers (##) for each section:

## Executive Summary
(2-3 sentences summarizing the overall risk posture)

## Key Risk Factors
(Bullet list of identified risk factors with explanations)

## Alert History Analysis
(Analysis of alert patterns and concerns)

## Document Compliance Status
(Assessment of document verification status and any gaps)

## Recommended Risk Tier
(State your recommended risk tier, HIGH, MEDIUM, or LOW, with justification. If it differs from the current tier of %s, explicitly note the difference.)

## Suggested Next Steps
(Numbered list of recommended actions for the analyst)
`,
		customer.CustomerId, customer.LegalName, customer.BusinessType, customer.Jurisdiction,
		customer.RiskTier, customer.KycStatus, promptDate(customer.OnboardingDate),
		promptDatePtr(customer.LastReviewDate), promptDatePtr(customer.NextReviewDue),
		customer.AssignedAnalyst, riskFactors,
		alertData, docData, caseData, customer.RiskTier)

	return &PromptRequest{
		System: "You are a senior KYC compliance analyst at a major financial institution. Generate formal, regulatory-aware risk assessments. Be specific, reference the data provided, and use professional compliance language suitable for regulatory review.",
		Prompt: prompt,
	}, nil
}

func (s *aiService) AlertTriagePrompt(ctx context.Context, alertId string) (*PromptRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	alert, err := uow.AlertRepository().FindOne(ctx, specification.ByAlertCode{Code: alertId})
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, serverutils.NotFound("Alert not found")
	}

	otherAlerts, err := uow.AlertRepository().FindAll(ctx,
		specification.ByCustomerID{CustomerID: alert.CustomerId})
	if err != nil {
		return nil, err
	}

	otherLines := make([]string, 0, len(otherAlerts))
	for _, a := range otherAlerts {
		if a.Id == alert.Id {
			continue
		}
		otherLines = append(otherLines, fmt.Sprintf("  - %s: %s (Severity: %s, Status: %s)",
			a.AlertId, a.AlertType, a.Severity, a.Status))
	}
	otherAlertText := joinOrDefault(otherLines, "  No other alerts")

	customer := alert.Customer
	if customer == nil {
		return nil, serverutils.NotFound("Customer not found")
	}

	prompt := fmt.Sprintf(`Triage the following AML alert and provide a structured assessment.

ALERT DETAILS:
- Alert ID: %s
- Alert Type: %s
- Severity: %s
- Status: %s
- Created Date: %s
- Description: %s

CUSTOMER CONTEXT:
- Customer: %s (%s)
- Business Type: %s
- Jurisdiction: %s
- Risk Tier: %s

CUSTOMER'S OTHER ALERTS:
%s

Generate a concise triage assessment with these exact sections. Use markdown headers (##) for each:

## Risk Rating
(Rate this alert 1-10 with a brief explanation. 1=lowest risk, 10=highest.)

## Pattern Analysis
(Does this match known money laundering or financial crime typologies? Be specific.)

## Recommended Investigation Steps
(Numbered list of 3-5 concrete investigation steps)

## Similar Historical Alerts
(Reference the customer's other alerts and any patterns)

## Recommended Disposition
(Recommend: investigate further, escalate, or likely false positive. Be decisive.)
`,
		alert.AlertId, alert.AlertType, alert.Severity, alert.Status,
		promptDate(alert.CreatedDate), alert.Description,
		customer.LegalName, customer.CustomerId, customer.BusinessType,
		customer.Jurisdiction, customer.RiskTier, otherAlertText)

	return &PromptRequest{
		System: "You are an experienced AML compliance analyst. Provide concise, actionable triage assessments. Be direct and specific, analysts need clear guidance, not hedging.",
		Prompt: prompt,
	}, nil
}

func (s *aiService) CaseSummaryPrompt(ctx context.Context, caseId string) (*PromptRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	kase, err := uow.CaseRepository().FindOne(ctx, specification.ByCaseCode{Code: caseId})
	if err != nil {
		return nil, err
	}
	if kase == nil {
		return nil, serverutils.NotFound("Case not found")
	}

	notes, err := uow.CaseNoteRepository().FindAll(ctx,
		specification.Filter("case_id", kase.Id),
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	alerts, err := uow.AlertRepository().FindAll(ctx, specification.ByCustomerID{CustomerID: kase.CustomerId})
	if err != nil {
		return nil, err
	}
	documents, err := uow.DocumentRepository().FindAll(ctx, specification.ByCustomerID{CustomerID: kase.CustomerId})
	if err != nil {
		return nil, err
	}

	noteLines := make([]string, 0, len(notes))
	for _, n := range notes {
		noteLines = append(noteLines, fmt.Sprintf("  [%s] %s: %s",
			n.CreatedAt.Format("2006-01-02 15:04:05"), n.AnalystName, n.Content))
	}
	notesText := joinOrDefault(noteLines, "  No notes recorded")

	alertLines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		alertLines = append(alertLines, fmt.Sprintf("  - %s: %s (%s, %s)",
			a.AlertId, a.AlertType, a.Severity, a.Status))
	}
	alertText := joinOrDefault(alertLines, "  No alerts")

	docLines := make([]string, 0, len(documents))
	for _, d := range documents {
		docLines = append(docLines, fmt.Sprintf("  - %s: %s (%s)",
			d.DocumentId, d.DocType, d.VerificationStatus))
	}
	docText := joinOrDefault(docLines, "  No documents")

	customer := kase.Customer
	if customer == nil {
		return nil, serverutils.NotFound("Customer not found")
	}

	prompt := fmt.Sprintf(`Generate a formal case closure summary for the following compliance case.

CASE DETAILS:
- Case ID: %s
- Case Type: %s
- Priority: %s
- Status: %s
- Opened: %s
- Due Date: %s
- Assigned Analyst: %s

CUSTOMER:
- %s (%s)
- Business Type: %s
- Jurisdiction: %s
- Risk Tier: %s

CASE NOTES (chronological):
%s

ASSOCIATED ALERTS:
%s

ASSOCIATED DOCUMENTS:
%s

Generate a formal case summary with these exact sections. Use markdown headers (##):

## Case Overview
(Brief overview of the case, its trigger, and scope)

## Investigation Steps Taken
(Based on the case notes, summarize what investigation was performed)

## Findings Summary
(Key findings from the investigation)

## Risk Assessment Conclusion
(Overall risk assessment based on the investigation)

## Recommended Disposition
(Recommend: close with no further action, escalate to senior management, continue monitoring, or refer to regulatory authority)
`,
		kase.CaseId, kase.CaseType, kase.Priority, kase.Status,
		promptDate(kase.OpenedDate), promptDatePtr(kase.DueDate), kase.AssignedAnalyst,
		customer.LegalName, customer.CustomerId, customer.BusinessType,
		customer.Jurisdiction, customer.RiskTier,
		notesText, alertText, docText)

	return &PromptRequest{
		System: "You are a senior compliance officer writing formal case summaries for regulatory records. Use formal, precise language suitable for audit review. Reference specific data points from the case.",
		Prompt: prompt,
	}, nil
}

func (s *aiService) ComplianceNarrativePrompt(ctx context.Context) (*PromptRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalCustomers, err := uow.CustomerRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	highRisk, err := uow.CustomerRepository().Count(ctx,
		specification.Filter("risk_tier", constant.RiskTierHigh))
	if err != nil {
		return nil, err
	}
	totalAlerts, err := uow.AlertRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	resolvedAlerts, err := uow.AlertRepository().Count(ctx,
		specification.Filter("status", constant.AlertStatusResolved))
	if err != nil {
		return nil, err
	}
	openAlerts, err := uow.AlertRepository().Count(ctx,
		specification.Filter("status", constant.AlertStatusOpen))
	if err != nil {
		return nil, err
	}
	totalCases, err := uow.CaseRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	closedCases, err := uow.CaseRepository().Count(ctx,
		specification.Filter("status", constant.CaseStatusClosed))
	if err != nil {
		return nil, err
	}
	escalatedCases, err := uow.CaseRepository().Count(ctx,
		specification.Filter("status", constant.CaseStatusEscalated))
	if err != nil {
		return nil, err
	}
	verifiedDocs, err := uow.DocumentRepository().Count(ctx,
		specification.Filter("verification_status", constant.DocStatusVerified))
	if err != nil {
		return nil, err
	}
	expiredDocs, err := uow.DocumentRepository().Count(ctx,
		specification.Filter("verification_status", constant.DocStatusExpired))
	if err != nil {
		return nil, err
	}
	totalDocs, err := uow.DocumentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Generate a quarterly compliance report narrative based on the following metrics.

COMPLIANCE METRICS:
- Total Customers Under Monitoring: %d
- High-Risk Customers: %d (%.1f%% of total)
- Total AML Alerts Generated: %d
- Alerts Resolved: %d (%.1f%% resolution rate)
- Open Alerts Requiring Action: %d
- Total Compliance Cases: %d
- Cases Closed: %d
- Cases Escalated: %d
- Documents Verified: %d of %d
- Documents Expired: %d

Write a 3-4 paragraph professional narrative suitable for inclusion in a quarterly compliance report to the Board of Directors. Cover:
1. Overall compliance program health and key metrics
2. AML monitoring effectiveness and alert resolution
3. Document compliance and any concerns
4. Recommendations and forward-looking priorities

Do NOT use markdown headers, write flowing paragraphs. Use formal board-report language.
`,
		totalCustomers, highRisk, percentage(highRisk, totalCustomers),
		totalAlerts, resolvedAlerts, percentage(resolvedAlerts, totalAlerts),
		openAlerts, totalCases, closedCases, escalatedCases,
		verifiedDocs, totalDocs, expiredDocs)

	return &PromptRequest{
		System: "You are the Chief Compliance Officer preparing the quarterly compliance report narrative for the Board of Directors. Write in a formal, authoritative tone with specific metrics references.",
		Prompt: prompt,
	}, nil
}

// --- helpers ---

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func joinOrDefault(lines []string, fallback string) string {
	if len(lines) == 0 {
		return fallback
	}
	return strings.Join(lines, "\n")
}

func promptDate(t time.Time) string {
	if t.IsZero() {
		return "None"
	}
	return t.Format(dateLayout)
}

func promptDatePtr(t *time.Time) string {
	if t == nil {
		return "None"
	}
	return promptDate(*t)
}

func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
