package mpesa

import "github.com/shopspring/decimal"

type ChargeKind string

const (
	ChargeP2P        ChargeKind = "P2P"
	ChargeWithdrawal ChargeKind = "WITHDRAWAL"
)

type bracket struct {
	min int64
	max int64
	fee int64
}

// Tariff ladders approximating the published Safaricom rates as of 2024/2025.
// Rates change over time; always check the official tariffs before relying on
// these for anything beyond estimates. Amounts outside every bracket are
// treated as fee-exempt.
var p2pTariffs = []bracket{
	{0, 49, 0},
	{50, 100, 0},
	{101, 500, 7},
	{501, 1000, 13},
	{1001, 1500, 23},
	{1501, 2500, 33},
	{2501, 3500, 53},
	{3501, 5000, 57},
	{5001, 7500, 78},
	{7501, 10000, 90},
	{10001, 15000, 100},
	{15001, 20000, 105},
	{20001, 35000, 108},
	{35001, 50000, 108},
	{50001, 250000, 108},
}

// Withdrawals have no free bracket; even the smallest amount carries a charge.
var withdrawalTariffs = []bracket{
	{10, 100, 11},
	{101, 500, 29},
	{501, 1000, 29},
	{1001, 1500, 29},
	{1501, 2500, 29},
	{2501, 3500, 52},
	{3501, 5000, 69},
	{5001, 7500, 87},
	{7501, 10000, 115},
	{10001, 15000, 167},
	{15001, 20000, 185},
	{20001, 35000, 197},
	{35001, 50000, 278},
	{50001, 250000, 309},
}

// Charge looks up the fixed fee for an amount in the given tariff table via a
// linear scan; the first containing bracket wins. Kinds other than P2P and
// withdrawal (Pay Bill, Buy Goods, airtime) are not charged to the sender and
// always yield zero.
func Charge(amount decimal.Decimal, kind ChargeKind) decimal.Decimal {
	var table []bracket
	switch kind {
	case ChargeP2P:
		table = p2pTariffs
	case ChargeWithdrawal:
		table = withdrawalTariffs
	default:
		return decimal.Zero
	}

	for _, b := range table {
		if amount.GreaterThanOrEqual(decimal.NewFromInt(b.min)) &&
			amount.LessThanOrEqual(decimal.NewFromInt(b.max)) {
			return decimal.NewFromInt(b.fee)
		}
	}
	return decimal.Zero
}

// ChargeForKind maps a notification shape to its tariff table and returns the
// estimated fee. Shapes outside the two charged rails yield zero.
func ChargeForKind(amount decimal.Decimal, kind Kind) decimal.Decimal {
	switch kind {
	case KindSent:
		return Charge(amount, ChargeP2P)
	case KindWithdrawal:
		return Charge(amount, ChargeWithdrawal)
	default:
		return decimal.Zero
	}
}
