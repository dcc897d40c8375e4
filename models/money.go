package models

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of fractional digits kept for every stored amount.
const MoneyPlaces = 2

// MaxMoney is the largest value a decimal(10,2) column holds.
var MaxMoney = decimal.RequireFromString("99999999.99")

var hundred = decimal.NewFromInt(100)

// RoundMoney reduces d to the precision of the decimal(10,2) and decimal(5,2) columns.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// LineSubtotal returns unitPrice * (1 - discount/100) * quantity rounded to MoneyPlaces.
func LineSubtotal(unitPrice, discount decimal.Decimal, quantity int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(discount.Div(hundred))
	return unitPrice.Mul(factor).Mul(decimal.NewFromInt(int64(quantity))).Round(MoneyPlaces)
}

// SumSubtotals adds the subtotals of items.
func SumSubtotals(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	return total.Round(MoneyPlaces)
}
