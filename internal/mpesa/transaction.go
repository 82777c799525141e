package mpesa

import (
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindSent              Kind = "Sent"
	KindReceived          Kind = "Received"
	KindPayBillOrBuyGoods Kind = "Pay Bill/Buy Goods"
	KindWithdrawal        Kind = "Withdrawal"
	KindAirtimePurchase   Kind = "Airtime Purchase"
)

// ParsedTransaction is the structured form of one M-Pesa notification or one
// statement line. It is built fresh per input and never mutated afterwards;
// enrichment (fee estimation, category suggestion) happens on copies held by
// the caller.
type ParsedTransaction struct {
	Kind             Kind            `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	Counterparty     string          `json:"counterparty"`
	AccountReference string          `json:"account_reference,omitempty"`
	AgentNumber      string          `json:"agent_number,omitempty"`
	OccurredAt       Timestamp       `json:"occurred_at"`
	TransactionID    string          `json:"transaction_id,omitempty"`
	BalanceAfter     decimal.Decimal `json:"balance_after"`
	Fee              decimal.Decimal `json:"fee"`
	HasExplicitFee   bool            `json:"has_explicit_fee"`
	Description      string          `json:"description"`
}
