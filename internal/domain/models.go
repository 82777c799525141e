package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Source string

const (
	SourceSMS       Source = "sms"
	SourceStatement Source = "statement"
	SourceManual    Source = "manual"
)

// Expense is the persisted record. The durable ID lives here, not on the
// parsed transaction; the parser output has no identity of its own.
type Expense struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	PaymentMethod string          `json:"payment_method"`
	Source        Source          `json:"source"`
	CreatedAt     time.Time       `json:"created_at"`
}

type UploadStatus string

const (
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusCompleted  UploadStatus = "completed"
	UploadStatusFailed     UploadStatus = "failed"
)

// Upload tracks one statement ingestion job.
type Upload struct {
	ID            string       `json:"id"`
	Status        UploadStatus `json:"status"`
	ScannedLines  int          `json:"scanned_lines"`
	ExtractedRows int          `json:"extracted_rows"`
	CreatedAt     time.Time    `json:"created_at"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
}

// CategorySummary is one row of the monthly spend-vs-budget view.
type CategorySummary struct {
	Category   string          `json:"category"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// ExpenseFilter narrows expense listings. Dates are inclusive ISO dates;
// empty fields mean no constraint.
type ExpenseFilter struct {
	StartDate string
	EndDate   string
	Category  string
	Page      int
	PerPage   int
}
