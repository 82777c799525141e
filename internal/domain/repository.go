package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Upload management
	CreateUpload(ctx context.Context, uploadID string) error
	GetUpload(ctx context.Context, uploadID string) (*Upload, error)
	UpdateUploadStatus(ctx context.Context, uploadID string, status UploadStatus) error
	RecordUploadProgress(ctx context.Context, uploadID string, scannedLines, extractedRows int) error

	// Expense operations. AddExpense enforces uniqueness on TransactionID
	// when present and returns ErrDuplicateTransaction on a repeat.
	AddExpense(ctx context.Context, e Expense) error
	GetExpense(ctx context.Context, expenseID string) (*Expense, error)
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]Expense, int, error)
	SummaryByCategory(ctx context.Context, startDate, endDate string) ([]CategorySummary, error)
	TotalFees(ctx context.Context, startDate, endDate string) (decimal.Decimal, error)

	// Idempotency tracking for the extraction event bus. MarkEventProcessed
	// returns ErrDuplicateEvent when the event was already recorded.
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
