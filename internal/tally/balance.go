package tally

import (
	"github.com/shopspring/decimal"

	"schoolbook/internal/domain"
)

// Totals sums inflow and outflow amounts of the log separately.
func Totals(txs []domain.Transaction) (in, out decimal.Decimal) {
	for _, tx := range txs {
		switch tx.Kind {
		case domain.Inflow:
			in = in.Add(tx.Amount)
		case domain.Outflow:
			out = out.Add(tx.Amount)
		}
	}
	return in, out
}

// Balance folds the whole log into inflows minus outflows.
func Balance(txs []domain.Transaction) decimal.Decimal {
	in, out := Totals(txs)
	return in.Sub(out)
}
