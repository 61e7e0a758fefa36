package core

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Cents is a cost in the smallest currency unit. Unsigned by construction,
// so a negative amount is unrepresentable.
type Cents uint32

// String renders the amount in major units with a two-digit minor part,
// e.g. 299 → "2.99", 5 → "0.05".
func (c Cents) String() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}

// Grams is a shipping weight in grams. The stored unit is always grams;
// display picks a human unit by magnitude.
type Grams uint32

// Unit band thresholds, in grams.
const (
	poundThreshold = 908
	ounceThreshold = 57
)

var (
	gramsPerPound = decimal.NewFromFloat(453.59237)
	gramsPerOunce = decimal.NewFromFloat(28.349523125)
)

// String renders the weight as whole pounds (>= 908 g), whole ounces
// (57–907 g) or grams, rounding partial units up. The conversion is display
// only and lossy.
func (g Grams) String() string {
	d := decimal.NewFromInt(int64(g))
	switch {
	case g >= poundThreshold:
		return d.Div(gramsPerPound).Ceil().String() + "lb"
	case g >= ounceThreshold:
		return d.Div(gramsPerOunce).Ceil().String() + "oz"
	default:
		return strconv.FormatUint(uint64(g), 10) + "g"
	}
}
