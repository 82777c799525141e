package eventbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/internal/mpesa"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

// ExtractionConsumer persists extracted statement transactions. It is
// idempotent per event and treats duplicate transaction IDs as an expected
// outcome: re-uploading an overlapping statement must not fail the job.
type ExtractionConsumer struct {
	repo        domain.Repository
	logger      *logger.Logger
	workerCount int
}

func NewExtractionConsumer(repo domain.Repository, log *logger.Logger, workerCount int) *ExtractionConsumer {
	return &ExtractionConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (ec *ExtractionConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := ec.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		return err
	}
	if processed {
		ec.logger.Debug(ctx, "Event already processed, skipping", "event_id", event.ID)
		return nil
	}

	payload, ok := event.Payload.(TransactionExtractedEvent)
	if !ok {
		return fmt.Errorf("invalid payload type for %s", event.Type)
	}

	ctx = logger.WithUploadID(ctx, payload.UploadID)

	expense := expenseFromStatement(payload.Transaction)
	err = ec.repo.AddExpense(ctx, expense)
	if errors.Is(err, domain.ErrDuplicateTransaction) {
		ec.logger.Debug(ctx, "Duplicate transaction skipped",
			"transaction_id", payload.Transaction.TransactionID,
			"line_number", payload.LineNumber,
		)
	} else if err != nil {
		ec.logger.Error(ctx, "Failed to persist expense",
			"event_id", event.ID,
			"line_number", payload.LineNumber,
			"error", err,
		)
		return err
	}

	err = ec.repo.MarkEventProcessed(ctx, event.ID)
	if errors.Is(err, domain.ErrDuplicateEvent) {
		// Another worker won the race for this event; nothing left to do.
		return nil
	}
	return err
}

func (ec *ExtractionConsumer) GetWorkerCount() int {
	return ec.workerCount
}

// expenseFromStatement turns a statement outflow into the persisted record.
// Statement lines carry no fee column, so the fee stays zero; the category is
// only a suggestion the UI can override later.
func expenseFromStatement(tx mpesa.ParsedTransaction) domain.Expense {
	return domain.Expense{
		ID:            uuid.New().String(),
		TransactionID: tx.TransactionID,
		Date:          tx.OccurredAt.DateString(),
		Description:   tx.Description,
		Category:      mpesa.SuggestCategory(tx.Description, ""),
		Amount:        tx.Amount,
		Fee:           tx.Fee,
		PaymentMethod: "M-Pesa",
		Source:        domain.SourceStatement,
		CreatedAt:     time.Now(),
	}
}
