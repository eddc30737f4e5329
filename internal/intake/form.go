package intake

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/anomredux/rxcalc/internal/calc"
	"github.com/anomredux/rxcalc/internal/domain"
	"github.com/anomredux/rxcalc/internal/i18n"
	"github.com/shopspring/decimal"
)

// Sentinel is the drug name that ends the session.
const Sentinel = "done"

type Field int

const (
	FieldDrugName Field = iota
	FieldStrength
	FieldTabletsPerDose
	FieldDosesPerDay
	FieldDaysSupply
	FieldCostPerTablet
	fieldCount // sentinel: number of fields
)

var fieldNames = [fieldCount]string{
	"drug name", "strength", "tablets per dose", "doses per day", "days supply", "cost per tablet",
}

var fieldPrompts = [fieldCount]string{
	"prompt_drug", "prompt_strength", "prompt_tablets", "prompt_doses", "prompt_days", "prompt_cost",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

type Status int

const (
	// Pending means the line was accepted and the next field is due.
	Pending Status = iota
	// Done means the sentinel was entered in place of a drug name.
	Done
	// Rejected means the cycle was discarded; Err says why.
	Rejected
	// Complete means all fields were valid; Order holds them.
	Complete
)

type Result struct {
	Status Status
	Field  Field // field the line was submitted for
	Order  domain.Order
	Err    error
}

// Form collects one order a line at a time. Any rejection discards the
// partial order and returns the form to the drug name field.
type Form struct {
	field Field
	order domain.Order
	cost  float64
}

func NewForm() *Form {
	return &Form{}
}

// Field returns the field the next submitted line is read as.
func (f *Form) Field() Field {
	return f.field
}

// Prompt returns the localized prompt for the current field.
func (f *Form) Prompt() string {
	return i18n.T(fieldPrompts[f.field])
}

// Reset discards any partial input.
func (f *Form) Reset() {
	*f = Form{}
}

// Submit consumes one line of input for the current field.
func (f *Form) Submit(line string) Result {
	field := f.field
	res := f.submit(strings.TrimSpace(line))
	res.Field = field
	switch res.Status {
	case Pending:
		f.field++
	default:
		f.Reset()
	}
	return res
}

func (f *Form) submit(text string) Result {
	switch f.field {
	case FieldDrugName:
		if strings.EqualFold(text, Sentinel) {
			return Result{Status: Done}
		}
		if text == "" {
			return reject(ErrEmptyDrugName)
		}
		f.order.DrugName = i18n.Title(text)
	case FieldStrength:
		f.order.Strength = text
	case FieldTabletsPerDose, FieldDosesPerDay, FieldDaysSupply:
		n, err := strconv.Atoi(text)
		if err != nil {
			return reject(&ParseError{Field: f.field, Input: text, Err: err})
		}
		f.setCount(n)
	case FieldCostPerTablet:
		v, err := parseCost(text)
		if err != nil {
			return reject(&ParseError{Field: f.field, Input: text, Err: err})
		}
		f.cost = v
		return f.finish()
	}
	return Result{Status: Pending}
}

func (f *Form) setCount(n int) {
	switch f.field {
	case FieldTabletsPerDose:
		f.order.TabletsPerDose = n
	case FieldDosesPerDay:
		f.order.DosesPerDay = n
	case FieldDaysSupply:
		f.order.DaysSupply = n
	}
}

// finish applies range validation once every field has parsed.
func (f *Form) finish() Result {
	o := f.order
	if o.TabletsPerDose <= 0 || o.DosesPerDay <= 0 || o.DaysSupply <= 0 {
		return reject(ErrNotPositive)
	}
	if _, ok := calc.CheckedQuantity(o.TabletsPerDose, o.DosesPerDay, o.DaysSupply); !ok {
		return reject(ErrTooLarge)
	}
	if f.cost < 0 {
		return reject(ErrNegativeCost)
	}
	o.CostPerTablet = decimal.NewFromFloat(f.cost)
	return Result{Status: Complete, Order: o}
}

func parseCost(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

func reject(err error) Result {
	return Result{Status: Rejected, Err: err}
}

// Message returns the user-facing text for a rejection error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmptyDrugName):
		return i18n.T("err_empty_drug")
	case errors.Is(err, ErrNotPositive):
		return i18n.T("err_not_positive")
	case errors.Is(err, ErrTooLarge):
		return i18n.T("err_too_large")
	case errors.Is(err, ErrNegativeCost):
		return i18n.T("err_negative")
	default:
		return i18n.T("err_parse")
	}
}
