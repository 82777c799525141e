package eventbus_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/internal/eventbus"
	"github.com/dmuturi/pesatrack-be/internal/mpesa"
	"github.com/dmuturi/pesatrack-be/mocks"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

func extractedEvent(eventID string) eventbus.Event {
	return eventbus.Event{
		ID:   eventID,
		Type: eventbus.EventTypeTransactionExtracted,
		Payload: eventbus.TransactionExtractedEvent{
			UploadID: "upload-1",
			Transaction: mpesa.ParsedTransaction{
				Amount:        decimal.RequireFromString("500.00"),
				TransactionID: "QGA4S2D8F1",
				BalanceAfter:  decimal.RequireFromString("10200.00"),
				Description:   "Merchant Payment to NAIVAS",
			},
			LineNumber: 3,
		},
		Timestamp: time.Now(),
	}
}

func TestConsume_PersistsExpense(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	consumer := eventbus.NewExtractionConsumer(repo, log, 1)

	ctx := context.Background()
	event := extractedEvent("evt-1")

	var saved domain.Expense

	// Mock expectations
	repo.EXPECT().
		IsEventProcessed(mock.Anything, "evt-1").
		Return(false, nil).
		Once()

	repo.EXPECT().
		AddExpense(mock.Anything, mock.AnythingOfType("domain.Expense")).
		Run(func(ctx context.Context, e domain.Expense) {
			saved = e
		}).
		Return(nil).
		Once()

	repo.EXPECT().
		MarkEventProcessed(mock.Anything, "evt-1").
		Return(nil).
		Once()

	// Execute
	err := consumer.Consume(ctx, event)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "QGA4S2D8F1", saved.TransactionID)
	assert.Equal(t, domain.SourceStatement, saved.Source)
	assert.Equal(t, "M-Pesa", saved.PaymentMethod)
	assert.True(t, saved.Amount.Equal(decimal.RequireFromString("500.00")))
}

func TestConsume_AlreadyProcessedSkips(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	consumer := eventbus.NewExtractionConsumer(repo, log, 1)

	ctx := context.Background()

	// Mock expectations - no AddExpense, no MarkEventProcessed
	repo.EXPECT().
		IsEventProcessed(mock.Anything, "evt-1").
		Return(true, nil).
		Once()

	// Execute
	err := consumer.Consume(ctx, extractedEvent("evt-1"))

	// Assert
	require.NoError(t, err)
}

func TestConsume_DuplicateTransactionSkipped(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	consumer := eventbus.NewExtractionConsumer(repo, log, 1)

	ctx := context.Background()

	// Mock expectations - a re-uploaded statement row is skipped, not failed
	repo.EXPECT().
		IsEventProcessed(mock.Anything, "evt-1").
		Return(false, nil).
		Once()

	repo.EXPECT().
		AddExpense(mock.Anything, mock.AnythingOfType("domain.Expense")).
		Return(domain.ErrDuplicateTransaction).
		Once()

	repo.EXPECT().
		MarkEventProcessed(mock.Anything, "evt-1").
		Return(nil).
		Once()

	// Execute
	err := consumer.Consume(ctx, extractedEvent("evt-1"))

	// Assert
	require.NoError(t, err)
}

func TestConsume_MarkRaceLoserSucceeds(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	log := logger.New("info")
	consumer := eventbus.NewExtractionConsumer(repo, log, 1)

	ctx := context.Background()

	// Mock expectations - another worker marked the event first; not an error
	repo.EXPECT().
		IsEventProcessed(mock.Anything, "evt-1").
		Return(false, nil).
		Once()

	repo.EXPECT().
		AddExpense(mock.Anything, mock.AnythingOfType("domain.Expense")).
		Return(nil).
		Once()

	repo.EXPECT().
		MarkEventProcessed(mock.Anything, "evt-1").
		Return(domain.ErrDuplicateEvent).
		Once()

	// Execute
	err := consumer.Consume(ctx, extractedEvent("evt-1"))

	// Assert
	require.NoError(t, err)
}
