package mpesa

import (
	"regexp"
	"strings"
)

// statementLinePattern captures, in column order: transaction ID, date-time,
// details, optional paid-in, optional withdrawn, running balance. The layout
// is format-fragile by nature; statements whose text extraction drifts from
// this column order will simply produce no records.
var statementLinePattern = regexp.MustCompile(
	`^([A-Z0-9]{10})\s+` + // transaction ID, e.g. QGA4S2D8F1
		`(\d{1,2}/\d{1,2}/\d{2,4},\s+\d{1,2}:\d{2}\s+[AP]M)\s+` + // date and time
		`(.+?)\s+` + // details, non-greedy
		`([\d,]+\.\d{2})?\s*` + // paid in (optional)
		`([\d,]+\.\d{2})?\s*` + // withdrawn (optional)
		`([\d,]+\.\d{2})`) // balance

// ExtractStatementLine attempts to read one statement line as an outflow
// record. It returns false both for lines that do not match the column
// layout and for credit (paid-in only) lines; neither is an error.
func ExtractStatementLine(line string) (*ParsedTransaction, bool) {
	groups := statementLinePattern.FindStringSubmatch(strings.TrimSpace(line))
	if groups == nil {
		return nil, false
	}

	txID, dateTimeField, details := groups[1], groups[2], groups[3]
	withdrawnField, balanceField := groups[5], groups[6]

	// Money coming in is not an expense; only withdrawn lines qualify.
	if withdrawnField == "" {
		return nil, false
	}

	amount, err := CleanAmount(withdrawnField)
	if err != nil {
		return nil, false
	}
	balance, err := CleanAmount(balanceField)
	if err != nil {
		return nil, false
	}

	return &ParsedTransaction{
		Amount:        amount,
		OccurredAt:    ParseStatementDateTime(dateTimeField),
		TransactionID: txID,
		BalanceAfter:  balance,
		Description:   strings.TrimSpace(details),
	}, true
}

// ExtractStatement scans the full extracted text of a statement, one line at
// a time. Malformed lines are skipped independently so a single bad line can
// never abort the document.
func ExtractStatement(fullText string) []ParsedTransaction {
	var transactions []ParsedTransaction
	for _, line := range strings.Split(fullText, "\n") {
		if tx, ok := ExtractStatementLine(line); ok {
			transactions = append(transactions, *tx)
		}
	}
	return transactions
}
