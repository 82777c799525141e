package mpesa

import "time"

// SMS bodies write "20/07/25 at 10:00 AM"; statements write "20/07/25, 10:00 PM".
// Both come in two-digit and four-digit year variants, so each source carries
// its own layout pair.
var (
	smsLayouts       = []string{"2/1/06 3:04 PM", "2/1/2006 3:04 PM"}
	statementLayouts = []string{"2/1/06, 3:04 PM", "2/1/2006, 3:04 PM"}
)

// Timestamp is the fail-soft result of parsing a source date/time. Either it
// is canonical and Time is valid, or no known layout matched and the original
// substrings are preserved untouched. Callers must branch on Canonical rather
// than assume Time is set.
type Timestamp struct {
	Time      time.Time `json:"-"`
	RawDate   string    `json:"raw_date,omitempty"`
	RawTime   string    `json:"raw_time,omitempty"`
	Canonical bool      `json:"canonical"`
}

// ParseOccurredAt combines the date and time substrings of an SMS body. A
// malformed timestamp never fails the surrounding parse; the raw strings are
// carried through instead.
func ParseOccurredAt(datePart, timePart string) Timestamp {
	combined := datePart + " " + timePart
	for _, layout := range smsLayouts {
		if t, err := time.Parse(layout, combined); err == nil {
			return Timestamp{Time: t, Canonical: true}
		}
	}
	return Timestamp{RawDate: datePart, RawTime: timePart}
}

// ParseStatementDateTime parses the combined date-time column of a statement
// line ("18/07/24, 10:30 PM"), with the same fail-soft policy as
// ParseOccurredAt. The comma layout is deliberately distinct from the SMS one.
func ParseStatementDateTime(field string) Timestamp {
	for _, layout := range statementLayouts {
		if t, err := time.Parse(layout, field); err == nil {
			return Timestamp{Time: t, Canonical: true}
		}
	}
	return Timestamp{RawDate: field}
}

// DateString returns the canonical ISO date, or the raw source date when
// parsing fell back.
func (ts Timestamp) DateString() string {
	if ts.Canonical {
		return ts.Time.Format("2006-01-02")
	}
	return ts.RawDate
}

// TimeString returns the canonical clock time, or the raw source time when
// parsing fell back.
func (ts Timestamp) TimeString() string {
	if ts.Canonical {
		return ts.Time.Format("15:04:05")
	}
	return ts.RawTime
}
