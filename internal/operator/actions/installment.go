package actions

import (
	"time"

	"github.com/shopspring/decimal"
)

// splitValue divides a total across count installments at 2 decimal places.
// The base uses banker's rounding (half to even); the signed remainder is
// whatever the rounded base times count misses of the total, and belongs
// entirely to the first installment so the series still sums to the total.
func splitValue(total decimal.Decimal, count int) (base, remainder decimal.Decimal) {
	n := decimal.NewFromInt(int64(count))
	base = total.Div(n).RoundBank(2)
	remainder = total.Sub(base.Mul(n))
	return base, remainder
}

// addMonths advances a date by whole calendar months, clamping the
// day-of-month to the target month's last day (Jan 31 + 1 month = Feb 28/29).
func addMonths(t time.Time, months int) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	target := firstOfMonth.AddDate(0, months, 0)

	day := t.Day()
	lastDay := target.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, t.Location())
}
