package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/internal/eventbus"
	"github.com/dmuturi/pesatrack-be/mocks"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

const sampleStatementText = `MPESA STATEMENT
Customer Name: TEST USER
QGA4S2D8F1 12/7/25, 2:45 PM Merchant Payment to NAIVAS SUPERMARKET 0.00 500.00 10,200.00
QGB5T3E9G2 13/7/25, 9:10 AM Funds received from EMPLOYER LTD 25,000.00 35,200.00
QGC6U4F0H3 14/7/25, 6:30 PM Customer Withdrawal at AGENT 987654 0.00 2,000.00 33,200.00
Disclaimer: this statement is system generated`

func TestProcessStream_PublishesOutflowRows(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	bus := mocks.NewMockEventBus(t)
	log := logger.New("info")
	processor := NewStatementProcessor(bus, repo, log)

	ctx := context.Background()
	uploadID := "upload-123"

	var published []eventbus.Event

	// Mock expectations. The sample has 6 lines: 2 withdrawn-column rows
	// qualify, the paid-in row and the surrounding boilerplate do not.
	bus.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("eventbus.Event")).
		Run(func(ctx context.Context, event eventbus.Event) {
			published = append(published, event)
		}).
		Return(nil).
		Times(2)

	repo.EXPECT().
		RecordUploadProgress(mock.Anything, uploadID, 6, 2).
		Return(nil).
		Once()

	repo.EXPECT().
		UpdateUploadStatus(mock.Anything, uploadID, domain.UploadStatusCompleted).
		Return(nil).
		Once()

	// Execute
	err := processor.ProcessStream(ctx, uploadID, strings.NewReader(sampleStatementText))

	// Assert
	require.NoError(t, err)
	require.Len(t, published, 2)

	first, ok := published[0].Payload.(eventbus.TransactionExtractedEvent)
	require.True(t, ok)
	assert.Equal(t, uploadID, first.UploadID)
	assert.Equal(t, 3, first.LineNumber)
	assert.Equal(t, "QGA4S2D8F1", first.Transaction.TransactionID)
	assert.True(t, first.Transaction.Amount.Equal(decimal.NewFromInt(500)))

	second, ok := published[1].Payload.(eventbus.TransactionExtractedEvent)
	require.True(t, ok)
	assert.Equal(t, 5, second.LineNumber)
	assert.True(t, second.Transaction.Amount.Equal(decimal.NewFromInt(2000)))

	assert.Equal(t, "upload-123-3", published[0].ID)
	assert.Equal(t, "upload-123-5", published[1].ID)
}

func TestProcessStream_NoQualifyingLines(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	bus := mocks.NewMockEventBus(t)
	log := logger.New("info")
	processor := NewStatementProcessor(bus, repo, log)

	ctx := context.Background()
	uploadID := "upload-456"

	text := "just some text\nnothing statement shaped here\n"

	// Mock expectations - no events for a document with no matching lines
	repo.EXPECT().
		RecordUploadProgress(mock.Anything, uploadID, 2, 0).
		Return(nil).
		Once()

	repo.EXPECT().
		UpdateUploadStatus(mock.Anything, uploadID, domain.UploadStatusCompleted).
		Return(nil).
		Once()

	// Execute
	err := processor.ProcessStream(ctx, uploadID, strings.NewReader(text))

	// Assert
	require.NoError(t, err)
}

func TestProcessStream_PublishFailureSkipsRow(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	bus := mocks.NewMockEventBus(t)
	log := logger.New("info")
	processor := NewStatementProcessor(bus, repo, log)

	ctx := context.Background()
	uploadID := "upload-789"

	line := "QGA4S2D8F1 12/7/25, 2:45 PM Merchant Payment to NAIVAS 0.00 500.00 10,200.00"

	// Mock expectations - a failed publish drops the row but never aborts the scan
	bus.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("eventbus.Event")).
		Return(assert.AnError).
		Once()

	repo.EXPECT().
		RecordUploadProgress(mock.Anything, uploadID, 1, 0).
		Return(nil).
		Once()

	repo.EXPECT().
		UpdateUploadStatus(mock.Anything, uploadID, domain.UploadStatusCompleted).
		Return(nil).
		Once()

	// Execute
	err := processor.ProcessStream(ctx, uploadID, strings.NewReader(line))

	// Assert
	require.NoError(t, err)
}
