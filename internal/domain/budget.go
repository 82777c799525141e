package domain

import "github.com/shopspring/decimal"

// DefaultBudgets is the fixed monthly envelope per category, in Ksh. Loaded
// once; categories with a zero budget still appear in listings but never in
// the remaining-balance view.
var DefaultBudgets = map[string]decimal.Decimal{
	"Rent (Incl. Utilities)":     decimal.NewFromInt(10000),
	"Food":                       decimal.NewFromInt(11000),
	"Mobile Data/Airtime":        decimal.NewFromInt(1000),
	"Bike Maintenance/Transport": decimal.NewFromInt(1000),
	"Personal Care & Misc.":      decimal.NewFromInt(4500),
	"Discretionary/Flex":         decimal.NewFromInt(2000),
	"Contingency":                decimal.NewFromInt(500),
	"Savings Fund":               decimal.NewFromInt(10000),
	"Investment (e.g., Sacco)":   decimal.NewFromInt(0),
}
