package mpesa

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Notification shapes. Each keys off a unique fixed phrase ("sent to",
// "You have received", ...) so the shapes are mutually exclusive; the ordered
// evaluation in Classify is a safety net rather than a real tie-break.
// A leading alphanumeric transaction code before "Confirmed." may or may not
// be present, which is why none of these anchor at the start of the message.
var (
	sentPattern = regexp.MustCompile(
		`Confirmed\. (?:Ksh|KES)\s?([\d,]+\.\d{2}) sent to (.+?) on (\d{1,2}/\d{1,2}/\d{2,4}) at (\d{1,2}:\d{2} (?:AM|PM))\.\s*New M-PESA balance is (?:Ksh|KES)\s?([\d,]+\.\d{2})\.?\s*(?:Transaction cost, (?:Ksh|KES)\s?([\d,]+\.\d{2}))?`)

	receivedPattern = regexp.MustCompile(
		`Confirmed\. You have received (?:Ksh|KES)\s?([\d,]+\.\d{2}) from (.+?) on (\d{1,2}/\d{1,2}/\d{2,4}) at (\d{1,2}:\d{2} (?:AM|PM))\.\s*New M-PESA balance is (?:Ksh|KES)\s?([\d,]+\.\d{2})`)

	payBillPattern = regexp.MustCompile(
		`Confirmed\. (?:Ksh|KES)\s?([\d,]+\.\d{2}) paid to (.+?)(?: for account (.+?))? on (\d{1,2}/\d{1,2}/\d{2,4}) at (\d{1,2}:\d{2} (?:AM|PM))\.\s*New M-PESA balance is (?:Ksh|KES)\s?([\d,]+\.\d{2})\.?\s*(?:Transaction cost, (?:Ksh|KES)\s?([\d,]+\.\d{2}))?`)

	withdrawalPattern = regexp.MustCompile(
		`Confirmed\. (?:Ksh|KES)\s?([\d,]+\.\d{2}) withdrawn from M-PESA by (.+?) Agent (\d+) on (\d{1,2}/\d{1,2}/\d{2,4}) at (\d{1,2}:\d{2} (?:AM|PM))\.\s*New M-PESA balance is (?:Ksh|KES)\s?([\d,]+\.\d{2})\.?\s*Transaction cost, (?:Ksh|KES)\s?([\d,]+\.\d{2})`)

	airtimePattern = regexp.MustCompile(
		`Confirmed\. You bought (?:Ksh|KES)\s?([\d,]+\.\d{2}) airtime for (.+?) on (\d{1,2}/\d{1,2}/\d{2,4}) at (\d{1,2}:\d{2} (?:AM|PM))\.\s*New M-PESA balance is (?:Ksh|KES)\s?([\d,]+\.\d{2})`)
)

type shape struct {
	kind    Kind
	pattern *regexp.Regexp
	extract func(groups []string) (*ParsedTransaction, error)
}

// shapes is the fixed priority order. First full structural match wins and
// evaluation stops.
var shapes = []shape{
	{KindSent, sentPattern, extractSent},
	{KindReceived, receivedPattern, extractReceived},
	{KindPayBillOrBuyGoods, payBillPattern, extractPayBill},
	{KindWithdrawal, withdrawalPattern, extractWithdrawal},
	{KindAirtimePurchase, airtimePattern, extractAirtime},
}

// Classify matches one notification body against the known transaction shapes
// and extracts its fields. The second return value is false when no shape
// matches; that is the normal "needs manual entry" outcome, not an error.
func Classify(message string) (*ParsedTransaction, bool) {
	msg := strings.TrimSpace(message)
	for _, s := range shapes {
		groups := s.pattern.FindStringSubmatch(msg)
		if groups == nil {
			continue
		}
		tx, err := s.extract(groups)
		if err != nil {
			continue
		}
		return tx, true
	}
	return nil, false
}

func extractSent(g []string) (*ParsedTransaction, error) {
	amount, err := CleanAmount(g[1])
	if err != nil {
		return nil, err
	}
	balance, err := CleanAmount(g[5])
	if err != nil {
		return nil, err
	}
	fee, explicit, err := optionalFee(g[6])
	if err != nil {
		return nil, err
	}
	recipient := strings.TrimSpace(g[2])
	return &ParsedTransaction{
		Kind:           KindSent,
		Amount:         amount,
		Counterparty:   recipient,
		OccurredAt:     ParseOccurredAt(g[3], g[4]),
		BalanceAfter:   balance,
		Fee:            fee,
		HasExplicitFee: explicit,
		Description:    fmt.Sprintf("Money sent to %s", recipient),
	}, nil
}

func extractReceived(g []string) (*ParsedTransaction, error) {
	amount, err := CleanAmount(g[1])
	if err != nil {
		return nil, err
	}
	balance, err := CleanAmount(g[5])
	if err != nil {
		return nil, err
	}
	sender := strings.TrimSpace(g[2])
	return &ParsedTransaction{
		Kind:         KindReceived,
		Amount:       amount,
		Counterparty: sender,
		OccurredAt:   ParseOccurredAt(g[3], g[4]),
		BalanceAfter: balance,
		// Receiving money carries no transaction cost.
		Fee:         decimal.Zero,
		Description: fmt.Sprintf("Money received from %s", sender),
	}, nil
}

func extractPayBill(g []string) (*ParsedTransaction, error) {
	amount, err := CleanAmount(g[1])
	if err != nil {
		return nil, err
	}
	balance, err := CleanAmount(g[6])
	if err != nil {
		return nil, err
	}
	fee, explicit, err := optionalFee(g[7])
	if err != nil {
		return nil, err
	}
	business := strings.TrimSpace(g[2])
	return &ParsedTransaction{
		Kind:             KindPayBillOrBuyGoods,
		Amount:           amount,
		Counterparty:     business,
		AccountReference: strings.TrimSpace(g[3]),
		OccurredAt:       ParseOccurredAt(g[4], g[5]),
		BalanceAfter:     balance,
		Fee:              fee,
		HasExplicitFee:   explicit,
		Description:      fmt.Sprintf("Payment to %s", business),
	}, nil
}

func extractWithdrawal(g []string) (*ParsedTransaction, error) {
	amount, err := CleanAmount(g[1])
	if err != nil {
		return nil, err
	}
	balance, err := CleanAmount(g[6])
	if err != nil {
		return nil, err
	}
	fee, err := CleanAmount(g[7])
	if err != nil {
		return nil, err
	}
	agentName := strings.TrimSpace(g[2])
	agentNo := strings.TrimSpace(g[3])
	return &ParsedTransaction{
		Kind:           KindWithdrawal,
		Amount:         amount,
		Counterparty:   agentName,
		AgentNumber:    agentNo,
		OccurredAt:     ParseOccurredAt(g[4], g[5]),
		BalanceAfter:   balance,
		Fee:            fee,
		HasExplicitFee: true,
		Description:    fmt.Sprintf("Cash Withdrawal from %s (%s)", agentName, agentNo),
	}, nil
}

func extractAirtime(g []string) (*ParsedTransaction, error) {
	amount, err := CleanAmount(g[1])
	if err != nil {
		return nil, err
	}
	balance, err := CleanAmount(g[5])
	if err != nil {
		return nil, err
	}
	target := strings.TrimSpace(g[2])
	return &ParsedTransaction{
		Kind:         KindAirtimePurchase,
		Amount:       amount,
		Counterparty: target,
		OccurredAt:   ParseOccurredAt(g[3], g[4]),
		BalanceAfter: balance,
		// Airtime has no separate transaction cost.
		Fee:         decimal.Zero,
		Description: fmt.Sprintf("Airtime purchase for %s", target),
	}, nil
}

// optionalFee parses a "Transaction cost" capture that may be empty. An
// absent clause means the product charges nothing, so the fee defaults to 0.
func optionalFee(capture string) (decimal.Decimal, bool, error) {
	if capture == "" {
		return decimal.Zero, false, nil
	}
	fee, err := CleanAmount(capture)
	if err != nil {
		return decimal.Zero, false, err
	}
	return fee, true, nil
}
