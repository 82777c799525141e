package mpesa

import "strings"

// Budget categories the suggester can propose.
const (
	CategoryAirtime     = "Mobile Data/Airtime"
	CategoryContingency = "Contingency"
	CategoryRent        = "Rent (Incl. Utilities)"
	CategoryFood        = "Food"
)

// Pay-bill businesses treated as utility billers.
var utilityBillers = map[string]bool{
	"kplc":           true,
	"zuku":           true,
	"safaricom home": true,
}

type categoryRule struct {
	matches  func(description, business string) bool
	category string
}

// Ordered rules: more specific keywords precede the generic ones and the
// first match wins. This is a heuristic, not a committed taxonomy; new
// billers get appended as they show up in real messages.
var categoryRules = []categoryRule{
	{
		matches:  func(d, _ string) bool { return strings.Contains(d, "airtime") },
		category: CategoryAirtime,
	},
	{
		matches: func(d, _ string) bool {
			return strings.Contains(d, "withdrawal") || strings.Contains(d, "agent")
		},
		category: CategoryContingency,
	},
	{
		matches:  func(_, b string) bool { return utilityBillers[b] },
		category: CategoryRent,
	},
}

// SuggestCategory maps a transaction's description and business name to a
// budget category. The result is a pre-fill for the user to confirm or
// override, never a forced assignment.
func SuggestCategory(description, business string) string {
	d := strings.ToLower(description)
	b := strings.ToLower(strings.TrimSpace(business))

	for _, rule := range categoryRules {
		if rule.matches(d, b) {
			return rule.category
		}
	}
	return CategoryFood
}
