package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/mocks"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

func TestAddExpense_Success(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	svc := NewExpenseService(repo, log)

	ctx := context.Background()
	req := AddExpenseRequest{
		Date:        "2025-08-01",
		Description: "Groceries",
		Category:    "Food",
		Amount:      "850.50",
	}

	var saved domain.Expense

	// Mock expectations
	repo.EXPECT().
		AddExpense(mock.Anything, mock.AnythingOfType("domain.Expense")).
		Run(func(ctx context.Context, e domain.Expense) {
			saved = e
		}).
		Return(nil).
		Once()

	// Execute
	expense, err := svc.AddExpense(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.True(t, saved.Amount.Equal(decimal.RequireFromString("850.50")))
	assert.True(t, saved.Fee.IsZero())
	assert.Equal(t, "Cash", saved.PaymentMethod)
	assert.Equal(t, domain.SourceManual, saved.Source)
}

func TestAddExpense_Validation(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	svc := NewExpenseService(repo, log)

	ctx := context.Background()

	cases := []struct {
		name string
		req  AddExpenseRequest
	}{
		{"missing date", AddExpenseRequest{Description: "x", Category: "Food", Amount: "10"}},
		{"missing description", AddExpenseRequest{Date: "2025-08-01", Category: "Food", Amount: "10"}},
		{"missing category", AddExpenseRequest{Date: "2025-08-01", Description: "x", Amount: "10"}},
		{"missing amount", AddExpenseRequest{Date: "2025-08-01", Description: "x", Category: "Food"}},
		{"bad amount", AddExpenseRequest{Date: "2025-08-01", Description: "x", Category: "Food", Amount: "abc"}},
		{"negative amount", AddExpenseRequest{Date: "2025-08-01", Description: "x", Category: "Food", Amount: "-10"}},
		{"negative fee", AddExpenseRequest{Date: "2025-08-01", Description: "x", Category: "Food", Amount: "10", Fee: "-1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expense, err := svc.AddExpense(ctx, tc.req)
			assert.Error(t, err)
			assert.Nil(t, expense)
		})
	}
}

func TestAddExpense_DuplicateTransaction(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	svc := NewExpenseService(repo, log)

	ctx := context.Background()
	req := AddExpenseRequest{
		Date:          "2025-08-01",
		Description:   "Groceries",
		Category:      "Food",
		Amount:        "850.50",
		TransactionID: "QGH7X8K2L1",
	}

	// Mock expectations
	repo.EXPECT().
		AddExpense(mock.Anything, mock.AnythingOfType("domain.Expense")).
		Return(domain.ErrDuplicateTransaction).
		Once()

	// Execute
	expense, err := svc.AddExpense(ctx, req)

	// Assert
	assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
	assert.Nil(t, expense)
}

func TestGetExpense_Success(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	svc := NewExpenseService(repo, log)

	ctx := context.Background()
	expected := &domain.Expense{
		ID:       "e1",
		Date:     "2025-08-01",
		Category: "Food",
		Amount:   decimal.RequireFromString("850.50"),
	}

	// Mock expectations
	repo.EXPECT().
		GetExpense(mock.Anything, "e1").
		Return(expected, nil).
		Once()

	// Execute
	expense, err := svc.GetExpense(ctx, "e1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, expense)
}

func TestGetExpense_NotFound(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	svc := NewExpenseService(repo, log)

	ctx := context.Background()

	// Mock expectations
	repo.EXPECT().
		GetExpense(mock.Anything, "nonexistent").
		Return(nil, domain.ErrExpenseNotFound).
		Once()

	// Execute
	expense, err := svc.GetExpense(ctx, "nonexistent")

	// Assert
	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)
	assert.Nil(t, expense)
}

func TestMonthlySummary_ExpandsMonthBounds(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	svc := NewExpenseService(repo, log)

	ctx := context.Background()
	expected := []domain.CategorySummary{
		{
			Category:   "Food",
			TotalSpent: decimal.RequireFromString("4500"),
			Budgeted:   decimal.RequireFromString("11000"),
			Remaining:  decimal.RequireFromString("6500"),
		},
	}

	// Mock expectations - "2025-02" covers the 1st through the 28th
	repo.EXPECT().
		SummaryByCategory(mock.Anything, "2025-02-01", "2025-02-28").
		Return(expected, nil).
		Once()

	// Execute
	summary, err := svc.MonthlySummary(ctx, "2025-02")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, summary)
}

func TestMonthlySummary_InvalidYearMonth(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	svc := NewExpenseService(repo, log)

	ctx := context.Background()

	// Execute
	summary, err := svc.MonthlySummary(ctx, "02-2025")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestTotalFees(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	svc := NewExpenseService(repo, log)

	ctx := context.Background()

	// Mock expectations
	repo.EXPECT().
		TotalFees(mock.Anything, "2025-07-01", "2025-07-31").
		Return(decimal.RequireFromString("152.00"), nil).
		Once()

	// Execute
	total, err := svc.TotalFees(ctx, "2025-07-01", "2025-07-31")

	// Assert
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("152.00")))
}
