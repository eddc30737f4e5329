package calc

import (
	"github.com/anomredux/rxcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CostPlaces is the number of decimal places a prescription cost keeps.
const CostPlaces = 2

// Cost returns quantity × costPerTablet rounded to cents, half away from
// zero. The product is exact decimal arithmetic, so 1 × 0.125 gives 0.13
// and 1 × 20.005 gives 20.01.
func Cost(quantity int, costPerTablet decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity)).Mul(costPerTablet).Round(CostPlaces)
}

// Fill derives quantity, sig and cost for a validated order.
func Fill(o domain.Order) domain.Prescription {
	qty := QuantityNeeded(o.TabletsPerDose, o.DosesPerDay, o.DaysSupply)
	return domain.Prescription{
		DrugName:   o.DrugName,
		Strength:   o.Strength,
		Sig:        Sig(o.TabletsPerDose, FrequencyPhrase(o.DosesPerDay)),
		Quantity:   qty,
		DaysSupply: o.DaysSupply,
		Cost:       Cost(qty, o.CostPerTablet),
	}
}
