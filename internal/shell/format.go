package shell

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const dateLayout = "02/01/2006 15:04"

// money renders an amount with two decimals and the registry currency.
func (s *Shell) money(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + s.reg.Currency
}

// grade renders a grade with at most one decimal: 85, 72.5.
func grade(g float64) string {
	return strconv.FormatFloat(math.Round(g*10)/10, 'f', -1, 64)
}

func grades(gs []float64) string {
	parts := make([]string, len(gs))
	for i, g := range gs {
		parts[i] = grade(g)
	}
	return strings.Join(parts, ", ")
}

// average renders a computed average with two decimals.
func average(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func isInfOrNaN(f float64) bool { return math.IsNaN(f) || math.IsInf(f, 0) }
