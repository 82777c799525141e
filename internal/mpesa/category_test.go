package mpesa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCategory_Airtime(t *testing.T) {
	// "airtime" anywhere in the description always wins: the rule is first.
	assert.Equal(t, CategoryAirtime, SuggestCategory("Airtime purchase for your own number", ""))
	assert.Equal(t, CategoryAirtime, SuggestCategory("bought AIRTIME from agent", ""))
}

func TestSuggestCategory_Withdrawal(t *testing.T) {
	assert.Equal(t, CategoryContingency, SuggestCategory("Cash Withdrawal from Mama Mboga (123456)", ""))
	assert.Equal(t, CategoryContingency, SuggestCategory("paid via Agent kiosk", ""))
}

func TestSuggestCategory_UtilityBillers(t *testing.T) {
	assert.Equal(t, CategoryRent, SuggestCategory("Payment to KPLC", "KPLC"))
	assert.Equal(t, CategoryRent, SuggestCategory("Payment to Zuku", "zuku"))
	assert.Equal(t, CategoryRent, SuggestCategory("Payment to Safaricom Home", "Safaricom Home"))
}

func TestSuggestCategory_BillerMatchIsExact(t *testing.T) {
	// The biller list matches the whole business name, not substrings, so
	// product-suffixed variants fall through to the default.
	assert.Equal(t, CategoryFood, SuggestCategory("Payment to KPLC PREPAID", "KPLC PREPAID"))
	assert.Equal(t, CategoryFood, SuggestCategory("Payment to Zuku Fiber", "Zuku Fiber"))
}

func TestSuggestCategory_Default(t *testing.T) {
	assert.Equal(t, CategoryFood, SuggestCategory("Payment to ABC Supermarket", "ABC Supermarket"))
	assert.Equal(t, CategoryFood, SuggestCategory("Money sent to JOHN DOE", ""))
}

func TestSuggestCategory_OrderingMatters(t *testing.T) {
	// A description matching both airtime and agent keywords takes the
	// airtime category because that rule precedes the contingency one.
	assert.Equal(t, CategoryAirtime, SuggestCategory("airtime bought from agent", ""))
}
