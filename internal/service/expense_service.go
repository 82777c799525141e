package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

// AddExpenseRequest is a manually entered expense, the fallback path for
// anything the classifier could not parse.
type AddExpenseRequest struct {
	Date          string `json:"date"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Amount        string `json:"amount"`
	Fee           string `json:"fee"`
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id"`
}

type ExpenseService interface {
	AddExpense(ctx context.Context, req AddExpenseRequest) (*domain.Expense, error)
	GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, int, error)
	MonthlySummary(ctx context.Context, yearMonth string) ([]domain.CategorySummary, error)
	TotalFees(ctx context.Context, startDate, endDate string) (decimal.Decimal, error)
}

type expenseService struct {
	repo   domain.Repository
	logger *logger.Logger
}

func NewExpenseService(repo domain.Repository, log *logger.Logger) ExpenseService {
	return &expenseService{repo: repo, logger: log}
}

func (s *expenseService) AddExpense(ctx context.Context, req AddExpenseRequest) (*domain.Expense, error) {
	if req.Date == "" || req.Description == "" || req.Category == "" || req.Amount == "" {
		return nil, fmt.Errorf("date, description, category and amount are required")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative")
	}

	fee := decimal.Zero
	if req.Fee != "" {
		fee, err = decimal.NewFromString(req.Fee)
		if err != nil {
			return nil, fmt.Errorf("invalid fee: %w", err)
		}
		if fee.IsNegative() {
			return nil, fmt.Errorf("fee must not be negative")
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Cash"
	}

	expense := domain.Expense{
		ID:            uuid.New().String(),
		TransactionID: req.TransactionID,
		Date:          req.Date,
		Description:   req.Description,
		Category:      req.Category,
		Amount:        amount,
		Fee:           fee,
		PaymentMethod: paymentMethod,
		Source:        domain.SourceManual,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.AddExpense(ctx, expense); err != nil {
		s.logger.Error(ctx, "Failed to add expense", "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "Expense added",
		"expense_id", expense.ID,
		"category", expense.Category,
		"amount", expense.Amount.StringFixed(2),
	)
	return &expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.repo.GetExpense(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, domain.ErrExpenseNotFound) {
			s.logger.Error(ctx, "Failed to get expense", "expense_id", expenseID, "error", err)
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, int, error) {
	expenses, total, err := s.repo.ListExpenses(ctx, filter)
	if err != nil {
		s.logger.Error(ctx, "Failed to list expenses", "error", err)
		return nil, 0, err
	}
	return expenses, total, nil
}

func (s *expenseService) MonthlySummary(ctx context.Context, yearMonth string) ([]domain.CategorySummary, error) {
	start, end, err := monthBounds(yearMonth)
	if err != nil {
		return nil, err
	}

	summary, err := s.repo.SummaryByCategory(ctx, start, end)
	if err != nil {
		s.logger.Error(ctx, "Failed to build summary", "error", err)
		return nil, err
	}
	return summary, nil
}

func (s *expenseService) TotalFees(ctx context.Context, startDate, endDate string) (decimal.Decimal, error) {
	total, err := s.repo.TotalFees(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error(ctx, "Failed to total fees", "error", err)
		return decimal.Zero, err
	}
	return total, nil
}

// monthBounds expands "2024-07" into its inclusive first and last dates.
func monthBounds(yearMonth string) (string, string, error) {
	first, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return "", "", fmt.Errorf("invalid year_month %q, use YYYY-MM: %w", yearMonth, err)
	}

	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02"), nil
}
