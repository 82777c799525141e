package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/internal/mpesa"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

// ParseSMSResult is a classified notification plus the enrichment the UI
// pre-fills: a category suggestion and, where the message carried no
// "Transaction cost" clause, a tariff-table fee estimate.
type ParseSMSResult struct {
	Transaction       mpesa.ParsedTransaction `json:"transaction"`
	SuggestedCategory string                  `json:"suggested_category"`
	FeeEstimated      bool                    `json:"fee_estimated"`
}

type SMSService interface {
	ParseMessage(ctx context.Context, message string) (*ParseSMSResult, error)
	SaveParsed(ctx context.Context, result *ParseSMSResult, categoryOverride string) (*domain.Expense, error)
}

type smsService struct {
	repo   domain.Repository
	logger *logger.Logger
}

func NewSMSService(repo domain.Repository, log *logger.Logger) SMSService {
	return &smsService{repo: repo, logger: log}
}

func (s *smsService) ParseMessage(ctx context.Context, message string) (*ParseSMSResult, error) {
	tx, ok := mpesa.Classify(message)
	if !ok {
		// Expected outcome for anything that is not an M-Pesa notification;
		// the caller falls back to manual entry.
		s.logger.Debug(ctx, "Message matched no known shape")
		return nil, domain.ErrUnparseableMessage
	}

	result := &ParseSMSResult{Transaction: *tx}

	if !tx.HasExplicitFee {
		if estimate := mpesa.ChargeForKind(tx.Amount, tx.Kind); estimate.IsPositive() {
			result.Transaction.Fee = estimate
			result.FeeEstimated = true
		}
	}

	business := ""
	if tx.Kind == mpesa.KindPayBillOrBuyGoods {
		business = tx.Counterparty
	}
	result.SuggestedCategory = mpesa.SuggestCategory(tx.Description, business)

	s.logger.Info(ctx, "Message classified",
		"kind", tx.Kind,
		"amount", tx.Amount.StringFixed(2),
		"suggested_category", result.SuggestedCategory,
		"fee_estimated", result.FeeEstimated,
	)
	return result, nil
}

func (s *smsService) SaveParsed(ctx context.Context, result *ParseSMSResult, categoryOverride string) (*domain.Expense, error) {
	category := result.SuggestedCategory
	if categoryOverride != "" {
		category = categoryOverride
	}

	tx := result.Transaction
	expense := domain.Expense{
		ID:            uuid.New().String(),
		TransactionID: tx.TransactionID,
		Date:          tx.OccurredAt.DateString(),
		Description:   tx.Description,
		Category:      category,
		Amount:        tx.Amount,
		Fee:           tx.Fee,
		PaymentMethod: "M-Pesa",
		Source:        domain.SourceSMS,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.AddExpense(ctx, expense); err != nil {
		s.logger.Error(ctx, "Failed to save expense from SMS", "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "Expense saved from SMS",
		"expense_id", expense.ID,
		"category", expense.Category,
	)
	return &expense, nil
}
