package mpesa

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ksh(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCharge_P2P_FreeBand(t *testing.T) {
	for _, amount := range []string{"0", "1.00", "49.00", "50.00", "100.00"} {
		fee := Charge(ksh(amount), ChargeP2P)
		assert.True(t, fee.IsZero(), "amount %s should be free, got %s", amount, fee)
	}
}

func TestCharge_P2P_ChargedBands(t *testing.T) {
	tests := []struct {
		amount string
		fee    int64
	}{
		{"101", 7},
		{"500", 7},
		{"501", 13},
		{"1000", 13},
		{"1500", 23},
		{"2500", 33},
		{"3500", 53},
		{"5000", 57},
		{"7500", 78},
		{"10000", 90},
		{"15000", 100},
		{"20000", 105},
		{"35000", 108},
		{"50000", 108},
		{"250000", 108},
	}

	for _, tt := range tests {
		fee := Charge(ksh(tt.amount), ChargeP2P)
		assert.True(t, fee.Equal(decimal.NewFromInt(tt.fee)),
			"amount %s: got %s, want %d", tt.amount, fee, tt.fee)
	}
}

func TestCharge_Withdrawal_NoFreeBracket(t *testing.T) {
	floor := decimal.NewFromInt(11)
	for _, amount := range []string{"10", "100", "500", "1000", "5000", "10000", "50000", "250000"} {
		fee := Charge(ksh(amount), ChargeWithdrawal)
		assert.True(t, fee.GreaterThanOrEqual(floor),
			"amount %s: fee %s below withdrawal floor", amount, fee)
	}
}

func TestCharge_Withdrawal_Bands(t *testing.T) {
	tests := []struct {
		amount string
		fee    int64
	}{
		{"10", 11},
		{"500", 29},
		{"2500", 29},
		{"3500", 52},
		{"5000", 69},
		{"10000", 115},
		{"250000", 309},
	}

	for _, tt := range tests {
		fee := Charge(ksh(tt.amount), ChargeWithdrawal)
		assert.True(t, fee.Equal(decimal.NewFromInt(tt.fee)),
			"amount %s: got %s, want %d", tt.amount, fee, tt.fee)
	}
}

func TestCharge_OutsideBrackets(t *testing.T) {
	// Below the smallest withdrawal bracket and above the largest ceiling:
	// fee-exempt by design, never an error.
	assert.True(t, Charge(ksh("5"), ChargeWithdrawal).IsZero())
	assert.True(t, Charge(ksh("250001"), ChargeWithdrawal).IsZero())
	assert.True(t, Charge(ksh("-10"), ChargeP2P).IsZero())
	assert.True(t, Charge(ksh("300000"), ChargeP2P).IsZero())
}

func TestCharge_Idempotent(t *testing.T) {
	first := Charge(ksh("1200"), ChargeP2P)
	second := Charge(ksh("1200"), ChargeP2P)
	assert.True(t, first.Equal(second))
}

func TestCharge_UnknownKind(t *testing.T) {
	assert.True(t, Charge(ksh("1200"), ChargeKind("PAYBILL")).IsZero())
}

func TestChargeForKind(t *testing.T) {
	assert.True(t, ChargeForKind(ksh("250"), KindSent).Equal(decimal.NewFromInt(7)))
	assert.True(t, ChargeForKind(ksh("500"), KindWithdrawal).Equal(decimal.NewFromInt(29)))

	// Bill payments and airtime are not charged to the sender.
	assert.True(t, ChargeForKind(ksh("1200"), KindPayBillOrBuyGoods).IsZero())
	assert.True(t, ChargeForKind(ksh("100"), KindAirtimePurchase).IsZero())
	assert.True(t, ChargeForKind(ksh("100"), KindReceived).IsZero())
}
