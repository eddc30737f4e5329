package domain

import "github.com/shopspring/decimal"

// Order is one validated set of prescription inputs, ready to be filled.
type Order struct {
	DrugName       string
	Strength       string
	TabletsPerDose int
	DosesPerDay    int
	DaysSupply     int
	CostPerTablet  decimal.Decimal
}

// TabletsPerDay returns the daily tablet count for the order.
func (o Order) TabletsPerDay() int {
	return o.TabletsPerDose * o.DosesPerDay
}

type Prescription struct {
	DrugName   string
	Strength   string
	Sig        string
	Quantity   int // total tablets
	DaysSupply int // as entered, never recomputed
	Cost       decimal.Decimal
}

// Label returns drug name and strength as shown in summaries.
func (p Prescription) Label() string {
	if p.Strength == "" {
		return p.DrugName
	}
	return p.DrugName + " " + p.Strength
}
