package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		allowed bool
	}{
		{"open to under review", AlertStatusOpen, AlertStatusUnderReview, true},
		{"open to dismissed", AlertStatusOpen, AlertStatusDismissed, true},
		{"open to resolved skips review", AlertStatusOpen, AlertStatusResolved, false},
		{"under review to resolved", AlertStatusUnderReview, AlertStatusResolved, true},
		{"under review to dismissed", AlertStatusUnderReview, AlertStatusDismissed, true},
		{"resolved reopens", AlertStatusResolved, AlertStatusOpen, true},
		{"dismissed reopens", AlertStatusDismissed, AlertStatusOpen, true},
		{"resolved to dismissed", AlertStatusResolved, AlertStatusDismissed, false},
		{"same status is not a transition", AlertStatusOpen, AlertStatusOpen, false},
		{"unknown current", "Bogus", AlertStatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(AlertTransitions, tt.current, tt.next))
		})
	}
}

func TestCaseTransitions(t *testing.T) {
	tests := []struct {
		current string
		next    string
		allowed bool
	}{
		{CaseStatusOpen, CaseStatusInProgress, true},
		{CaseStatusOpen, CaseStatusEscalated, true},
		{CaseStatusOpen, CaseStatusClosed, false},
		{CaseStatusInProgress, CaseStatusEscalated, true},
		{CaseStatusInProgress, CaseStatusClosed, true},
		{CaseStatusEscalated, CaseStatusClosed, true},
		{CaseStatusEscalated, CaseStatusOpen, false},
		{CaseStatusClosed, CaseStatusOpen, true},
		{CaseStatusClosed, CaseStatusInProgress, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransition(CaseTransitions, tt.current, tt.next),
			"%s -> %s", tt.current, tt.next)
	}
}

func TestDocumentTransitions(t *testing.T) {
	tests := []struct {
		current string
		next    string
		allowed bool
	}{
		{DocStatusPending, DocStatusVerified, true},
		{DocStatusPending, DocStatusRejected, true},
		{DocStatusPending, DocStatusExpired, true},
		{DocStatusVerified, DocStatusExpired, true},
		{DocStatusVerified, DocStatusPending, false},
		{DocStatusExpired, DocStatusPending, true},
		{DocStatusRejected, DocStatusPending, true},
		{DocStatusRejected, DocStatusVerified, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransition(DocumentTransitions, tt.current, tt.next),
			"%s -> %s", tt.current, tt.next)
	}
}
