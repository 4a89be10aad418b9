package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitmoney/splitmoney/pkg/domain"
)

// ExportJobCreate captures an admin's report export request.
type ExportJobCreate struct {
	ID          uuid.UUID
	ReportType  domain.ReportType
	Format      domain.ExportFormat
	Filters     map[string]string
	RequestedBy uuid.UUID
}

// ExportJobRead is the read view of an export request. Status, FilePath and
// Message are advanced by the offline worker only.
type ExportJobRead struct {
	ID          uuid.UUID           `json:"id"`
	ReportType  domain.ReportType   `json:"report_type"`
	Format      domain.ExportFormat `json:"export_format"`
	Status      domain.ExportStatus `json:"status"`
	Filters     map[string]string   `json:"filters,omitempty"`
	FilePath    string              `json:"file_path,omitempty"`
	Message     string              `json:"message,omitempty"`
	RequestedBy uuid.UUID           `json:"requested_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TrendPoint is one bucket of a time-series aggregation.
type TrendPoint struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// OrganizerStat ranks event creators by event count.
type OrganizerStat struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Events   int64     `json:"events"`
}

// MethodSplit aggregates completed amounts per payment method label.
type MethodSplit struct {
	Method string          `json:"method"`
	Total  decimal.Decimal `json:"total"`
	Count  int64           `json:"count"`
}

// DateRange bounds a report query (inclusive).
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// AdminSummaryReport is the admin dashboard-style rollup.
type AdminSummaryReport struct {
	Range              DateRange        `json:"range"`
	Interval           string           `json:"interval"`
	CompletedTotal     decimal.Decimal  `json:"completed_total"`
	PendingTotal       decimal.Decimal  `json:"pending_total"`
	FailedCount        int64            `json:"failed_count"`
	CollectionsTrend   []TrendPoint     `json:"collections_trend"`
	EventCounts        map[string]int64 `json:"event_counts"`
	TopOrganizers      []OrganizerStat  `json:"top_organizers"`
	PaymentMethodSplit []MethodSplit    `json:"payment_method_split"`
}

// UserSummaryReport is the per-account rollup.
type UserSummaryReport struct {
	Range            DateRange       `json:"range"`
	CreatedEvents    int64           `json:"created_events"`
	JoinedEvents     int64           `json:"joined_events"`
	ContributedTotal decimal.Decimal `json:"contributed_total"`
	PendingTotal     decimal.Decimal `json:"pending_total"`
}

// AdminStats backs the admin dashboard cards.
type AdminStats struct {
	TotalUsers     int64           `json:"total_users"`
	ActiveEvents   int64           `json:"active_events"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	PendingPayment decimal.Decimal `json:"pending_payment"`
}

// UserStats backs the per-account dashboard cards.
type UserStats struct {
	TotalCreatedEvents int64           `json:"total_created_events"`
	TotalJoinedEvents  int64           `json:"total_joined_events"`
	TotalWalletBalance decimal.Decimal `json:"total_wallet_balance"`
}
