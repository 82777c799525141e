package eventbus

import (
	"time"

	"github.com/dmuturi/pesatrack-be/internal/mpesa"
)

type EventType string

const (
	EventTypeTransactionExtracted EventType = "transaction.extracted"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// TransactionExtractedEvent carries one statement line that qualified as an
// outflow, on its way to persistence.
type TransactionExtractedEvent struct {
	UploadID    string                  `json:"upload_id"`
	Transaction mpesa.ParsedTransaction `json:"transaction"`
	LineNumber  int                     `json:"line_number"`
}
