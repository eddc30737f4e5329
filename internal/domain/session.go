package domain

import "github.com/shopspring/decimal"

// Session holds the prescriptions completed during one run, in entry order.
// It only grows; records are never edited or removed.
type Session struct {
	prescriptions []Prescription
}

func NewSession() *Session {
	return &Session{}
}

// Add appends a completed prescription.
func (s *Session) Add(p Prescription) {
	s.prescriptions = append(s.prescriptions, p)
}

func (s *Session) Len() int {
	return len(s.prescriptions)
}

func (s *Session) Empty() bool {
	return len(s.prescriptions) == 0
}

// Prescriptions returns a copy of the records in insertion order.
func (s *Session) Prescriptions() []Prescription {
	out := make([]Prescription, len(s.prescriptions))
	copy(out, s.prescriptions)
	return out
}

// GrandTotal sums the already rounded per-prescription costs in session order.
func (s *Session) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.prescriptions {
		total = total.Add(p.Cost)
	}
	return total
}
