package mpesa

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Sent(t *testing.T) {
	msg := "Confirmed. Ksh250.00 sent to JOHN DOE 0712345678 on 20/07/25 at 9:30 AM. " +
		"New M-PESA balance is Ksh5,000.00. Transaction cost, Ksh13.00. " +
		"Funds are available for 7 days.To reverse, forward this message to 456."

	tx, ok := Classify(msg)
	require.True(t, ok)

	assert.Equal(t, KindSent, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("250.00")))
	assert.Equal(t, "JOHN DOE 0712345678", tx.Counterparty)
	assert.Equal(t, "2025-07-20", tx.OccurredAt.DateString())
	assert.True(t, tx.BalanceAfter.Equal(decimal.RequireFromString("5000.00")))
	assert.True(t, tx.Fee.Equal(decimal.RequireFromString("13.00")))
	assert.True(t, tx.HasExplicitFee)
	assert.Equal(t, "Money sent to JOHN DOE 0712345678", tx.Description)
}

func TestClassify_Sent_ThousandsSeparator(t *testing.T) {
	msg := "Confirmed. Ksh12,500.00 sent to MARY WANJIKU 0722000000 on 01/02/25 at 8:15 AM. " +
		"New M-PESA balance is Ksh1,300.50. Transaction cost, Ksh105.00."

	tx, ok := Classify(msg)
	require.True(t, ok)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("12500.00")))
	assert.True(t, tx.BalanceAfter.Equal(decimal.RequireFromString("1300.50")))
}

func TestClassify_Sent_NoCostClause(t *testing.T) {
	msg := "Confirmed. Ksh50.00 sent to JOHN DOE 0712345678 on 20/07/25 at 9:30 AM. " +
		"New M-PESA balance is Ksh5,000.00."

	tx, ok := Classify(msg)
	require.True(t, ok)
	assert.True(t, tx.Fee.IsZero())
	assert.False(t, tx.HasExplicitFee)
}

func TestClassify_Received(t *testing.T) {
	msg := "Confirmed. You have received Ksh1,500.00 from JANE DOE 0787654321 on 20/07/25 at 9:45 AM. " +
		"New M-PESA balance is Ksh6,500.00."

	tx, ok := Classify(msg)
	require.True(t, ok)

	assert.Equal(t, KindReceived, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, "JANE DOE 0787654321", tx.Counterparty)
	assert.True(t, tx.Fee.IsZero())
	assert.Equal(t, "Money received from JANE DOE 0787654321", tx.Description)
}

func TestClassify_PayBill(t *testing.T) {
	msg := "Confirmed. Ksh1,200.00 paid to ABC Supermarket for account groceries on 20/07/25 at 10:00 AM. " +
		"New M-PESA balance is Ksh5,300.00. Transaction cost, Ksh0.00."

	tx, ok := Classify(msg)
	require.True(t, ok)

	assert.Equal(t, KindPayBillOrBuyGoods, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1200.00")))
	assert.Equal(t, "ABC Supermarket", tx.Counterparty)
	assert.Equal(t, "groceries", tx.AccountReference)
	assert.Equal(t, "2025-07-20", tx.OccurredAt.DateString())
	assert.True(t, tx.Fee.IsZero())
	assert.True(t, tx.HasExplicitFee)
	assert.Equal(t, "Payment to ABC Supermarket", tx.Description)
}

func TestClassify_PayBill_NoAccount(t *testing.T) {
	msg := "Confirmed. Ksh300.00 paid to XYZ Butchery on 21/07/25 at 1:05 PM. " +
		"New M-PESA balance is Ksh5,000.00."

	tx, ok := Classify(msg)
	require.True(t, ok)
	assert.Equal(t, KindPayBillOrBuyGoods, tx.Kind)
	assert.Equal(t, "XYZ Butchery", tx.Counterparty)
	assert.Empty(t, tx.AccountReference)
}

func TestClassify_Withdrawal(t *testing.T) {
	msg := "Confirmed. Ksh500.00 withdrawn from M-PESA by Mama Mboga Agent 123456 on 20/07/25 at 10:15 AM. " +
		"New M-PESA balance is Ksh4,800.00. Transaction cost, Ksh29.00."

	tx, ok := Classify(msg)
	require.True(t, ok)

	assert.Equal(t, KindWithdrawal, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, "Mama Mboga", tx.Counterparty)
	assert.Equal(t, "123456", tx.AgentNumber)
	assert.True(t, tx.Fee.Equal(decimal.RequireFromString("29.00")))
	assert.True(t, tx.HasExplicitFee)
	assert.Equal(t, "Cash Withdrawal from Mama Mboga (123456)", tx.Description)
}

func TestClassify_Airtime(t *testing.T) {
	msg := "Confirmed. You bought Ksh100.00 airtime for your own number on 20/07/25 at 10:30 AM. " +
		"New M-PESA balance is Ksh4,700.00."

	tx, ok := Classify(msg)
	require.True(t, ok)

	assert.Equal(t, KindAirtimePurchase, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "your own number", tx.Counterparty)
	assert.True(t, tx.Fee.IsZero())
	assert.Equal(t, "Airtime purchase for your own number", tx.Description)
}

func TestClassify_LeadingTransactionCode(t *testing.T) {
	// Some messages carry an alphanumeric code before "Confirmed." and the
	// classifier must tolerate both its presence and absence.
	msg := "RGF4K2L3 Confirmed. Ksh2,000.00 sent to Test User 0711111111 on 20/07/25 at 11:00 AM. " +
		"New M-PESA balance is Ksh20,000.00. Transaction cost, Ksh33.00."

	tx, ok := Classify(msg)
	require.True(t, ok)
	assert.Equal(t, KindSent, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("2000.00")))
}

func TestClassify_Unparseable(t *testing.T) {
	tx, ok := Classify("This is not an M-Pesa message.")

	assert.False(t, ok)
	assert.Nil(t, tx)
}

func TestClassify_MalformedDateFallsSoft(t *testing.T) {
	// An unparseable timestamp keeps the rest of the record intact.
	msg := "Confirmed. Ksh250.00 sent to JOHN DOE on 31/31/25 at 9:30 AM. " +
		"New M-PESA balance is Ksh5,000.00."

	tx, ok := Classify(msg)
	require.True(t, ok)
	assert.False(t, tx.OccurredAt.Canonical)
	assert.Equal(t, "31/31/25", tx.OccurredAt.DateString())
	assert.Equal(t, "9:30 AM", tx.OccurredAt.TimeString())
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("250.00")))
}
