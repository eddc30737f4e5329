package calc

import (
	"errors"
	"fmt"
	"math"
)

var ErrZeroTabletsPerDay = errors.New("tablets per day must not be zero")

// QuantityNeeded returns the total tablets for the full days supply.
func QuantityNeeded(tabletsPerDose, dosesPerDay, daysSupply int) int {
	return tabletsPerDose * dosesPerDay * daysSupply
}

// CheckedQuantity is QuantityNeeded for positive inputs, reporting false
// when the product does not fit in an int.
func CheckedQuantity(tabletsPerDose, dosesPerDay, daysSupply int) (int, bool) {
	if tabletsPerDose <= 0 || dosesPerDay <= 0 || daysSupply <= 0 {
		return 0, false
	}
	if tabletsPerDose > math.MaxInt/dosesPerDay {
		return 0, false
	}
	perDay := tabletsPerDose * dosesPerDay
	if perDay > math.MaxInt/daysSupply {
		return 0, false
	}
	return perDay * daysSupply, true
}

// DaysSupplyFromQuantity returns how many days totalQuantity lasts at
// tabletsPerDay. The result is fractional when the division is not exact.
func DaysSupplyFromQuantity(totalQuantity, tabletsPerDay int) (float64, error) {
	if tabletsPerDay == 0 {
		return 0, ErrZeroTabletsPerDay
	}
	return float64(totalQuantity) / float64(tabletsPerDay), nil
}

var frequencyPhrases = map[int]string{
	1: "once daily",
	2: "twice daily",
	3: "three times daily",
	4: "four times daily",
}

func FrequencyPhrase(dosesPerDay int) string {
	if p, ok := frequencyPhrases[dosesPerDay]; ok {
		return p
	}
	return fmt.Sprintf("%d times daily", dosesPerDay)
}

// Sig builds the patient directions, e.g. "Take 2 tablets twice daily".
func Sig(tabletsPerDose int, frequency string) string {
	if tabletsPerDose == 1 {
		return "Take 1 tablet " + frequency
	}
	return fmt.Sprintf("Take %d tablets %s", tabletsPerDose, frequency)
}
