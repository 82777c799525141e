package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmuturi/pesatrack-be/internal/domain"
	"github.com/dmuturi/pesatrack-be/internal/eventbus"
	"github.com/dmuturi/pesatrack-be/internal/mpesa"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

type StatementProcessorInterface interface {
	ProcessStream(ctx context.Context, uploadID string, reader io.Reader) error
}

// StatementProcessor scans extracted statement text line by line and
// publishes one event per qualifying outflow. Lines that match nothing are
// skipped silently; one bad line never aborts the document.
type StatementProcessor struct {
	eventBus eventbus.EventBus
	repo     domain.Repository
	logger   *logger.Logger
}

func NewStatementProcessor(eventBus eventbus.EventBus, repo domain.Repository, log *logger.Logger) *StatementProcessor {
	return &StatementProcessor{
		eventBus: eventBus,
		repo:     repo,
		logger:   log,
	}
}

func (p *StatementProcessor) ProcessStream(ctx context.Context, uploadID string, reader io.Reader) error {
	ctx = logger.WithUploadID(ctx, uploadID)
	p.logger.Info(ctx, "Starting statement scan")

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	scannedLines := 0
	extractedRows := 0

	for scanner.Scan() {
		scannedLines++

		tx, ok := mpesa.ExtractStatementLine(scanner.Text())
		if !ok {
			continue
		}

		event := eventbus.Event{
			ID:   fmt.Sprintf("%s-%d", uploadID, scannedLines),
			Type: eventbus.EventTypeTransactionExtracted,
			Payload: eventbus.TransactionExtractedEvent{
				UploadID:    uploadID,
				Transaction: *tx,
				LineNumber:  scannedLines,
			},
			Timestamp: time.Now(),
		}

		if err := p.eventBus.Publish(ctx, event); err != nil {
			p.logger.Error(ctx, "Failed to publish event",
				"event_id", event.ID,
				"line", scannedLines,
				"error", err,
			)
			continue
		}

		extractedRows++
	}

	if err := p.repo.RecordUploadProgress(ctx, uploadID, scannedLines, extractedRows); err != nil {
		p.logger.Error(ctx, "Failed to record upload progress", "error", err)
	}

	if err := scanner.Err(); err != nil {
		p.logger.Error(ctx, "Failed to read statement text", "error", err)
		if updateErr := p.repo.UpdateUploadStatus(ctx, uploadID, domain.UploadStatusFailed); updateErr != nil {
			p.logger.Error(ctx, "Failed to update upload status", "error", updateErr)
		}
		return err
	}

	if err := p.repo.UpdateUploadStatus(ctx, uploadID, domain.UploadStatusCompleted); err != nil {
		p.logger.Error(ctx, "Failed to update upload status", "error", err)
	}

	p.logger.Info(ctx, "Statement scan completed",
		"scanned_lines", scannedLines,
		"extracted_rows", extractedRows,
	)
	return nil
}
