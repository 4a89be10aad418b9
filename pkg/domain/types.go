package domain

import "strings"

// AdminRoleName is the role that bypasses the OTP challenge and gates
// admin-only endpoints. Comparison is case-insensitive everywhere.
const AdminRoleName = "ADMIN"

// DefaultRoleName is assumed when an account has no active role assignment.
const DefaultRoleName = "User"

// IsAdminRole reports whether a role claim grants admin access.
func IsAdminRole(role string) bool {
	return strings.EqualFold(role, AdminRoleName)
}

// EventCategory enumerates the kinds of cost-sharing occasions.
type EventCategory string

const (
	CategoryTurf       EventCategory = "turf"
	CategoryRestaurant EventCategory = "restaurant"
	CategoryTrip       EventCategory = "trip"
	CategoryParty      EventCategory = "party"
	CategoryCustom     EventCategory = "custom"
)

// EventCategories lists the valid category values, used for input validation.
var EventCategories = []EventCategory{
	CategoryTurf, CategoryRestaurant, CategoryTrip, CategoryParty, CategoryCustom,
}

// Valid reports whether c is a known category.
func (c EventCategory) Valid() bool {
	for _, v := range EventCategories {
		if c == v {
			return true
		}
	}
	return false
}

// EventStatus is the event lifecycle:
// draft -> active -> closed -> completed, any -> cancelled.
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventActive    EventStatus = "active"
	EventClosed    EventStatus = "closed"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// EventStatuses lists the valid lifecycle values, used for input validation.
var EventStatuses = []EventStatus{
	EventDraft, EventActive, EventClosed, EventCompleted, EventCancelled,
}

// Valid reports whether s is a known lifecycle value.
func (s EventStatus) Valid() bool {
	for _, v := range EventStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Joinable reports whether the event accepts new members via a share link.
func (s EventStatus) Joinable() bool {
	return s == EventActive || s == EventDraft
}

// TransactionKind classifies a monetary movement on the ledger.
type TransactionKind string

const (
	KindContribution TransactionKind = "contribution"
	KindRefund       TransactionKind = "refund"
	KindSettlement   TransactionKind = "settlement"
)

func (k TransactionKind) Valid() bool {
	switch k {
	case KindContribution, KindRefund, KindSettlement:
		return true
	}
	return false
}

// TransactionStatus tracks settlement of a ledger entry. Only "completed"
// counts as realized collection; "pending" is outstanding; "failed" is
// informational.
type TransactionStatus string

const (
	TxnPending   TransactionStatus = "pending"
	TxnCompleted TransactionStatus = "completed"
	TxnFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TxnPending, TxnCompleted, TxnFailed:
		return true
	}
	return false
}

// AccountStatus is the numeric active flag carried alongside soft delete.
type AccountStatus int

const (
	AccountInactive AccountStatus = 0
	AccountActive   AccountStatus = 1
)

// ReportType enumerates the export kinds understood by the report worker.
type ReportType string

const (
	ReportSummary      ReportType = "summary"
	ReportUsers        ReportType = "users"
	ReportEvents       ReportType = "events"
	ReportPayments     ReportType = "payments"
	ReportPayouts      ReportType = "payouts"
	ReportUserSummary  ReportType = "user-summary"
	ReportUserEvents   ReportType = "user-events"
	ReportUserPayments ReportType = "user-payments"
	ReportUserWallet   ReportType = "user-wallet"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportSummary, ReportUsers, ReportEvents, ReportPayments,
		ReportPayouts, ReportUserSummary, ReportUserEvents,
		ReportUserPayments, ReportUserWallet:
		return true
	}
	return false
}

// ExportFormat is the requested report output format.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatPDF  ExportFormat = "pdf"
	FormatJSON ExportFormat = "json"
)

func (f ExportFormat) Valid() bool {
	switch f {
	case FormatCSV, FormatPDF, FormatJSON:
		return true
	}
	return false
}

// ExportStatus is advanced only by the report worker, never by the API.
type ExportStatus string

const (
	ExportPending    ExportStatus = "pending"
	ExportProcessing ExportStatus = "processing"
	ExportCompleted  ExportStatus = "completed"
	ExportFailed     ExportStatus = "failed"
)
