package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSession_StartsEmpty(t *testing.T) {
	s := NewSession()
	if !s.Empty() || s.Len() != 0 {
		t.Fatalf("new session should be empty, got len %d", s.Len())
	}
	if !s.GrandTotal().IsZero() {
		t.Errorf("empty grand total = %s, want 0", s.GrandTotal())
	}
}

func TestSession_PreservesOrder(t *testing.T) {
	s := NewSession()
	for _, name := range []string{"Amoxicillin", "Lisinopril", "Metformin"} {
		s.Add(Prescription{DrugName: name})
	}

	got := s.Prescriptions()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"Amoxicillin", "Lisinopril", "Metformin"} {
		if got[i].DrugName != want {
			t.Errorf("record %d = %q, want %q", i+1, got[i].DrugName, want)
		}
	}
}

func TestSession_PrescriptionsIsCopy(t *testing.T) {
	s := NewSession()
	s.Add(Prescription{DrugName: "Amoxicillin"})

	got := s.Prescriptions()
	got[0].DrugName = "Changed"

	if s.Prescriptions()[0].DrugName != "Amoxicillin" {
		t.Error("mutating the returned slice must not change the session")
	}
}

func TestSession_GrandTotalSumsRoundedCosts(t *testing.T) {
	s := NewSession()
	// Costs are stored already rounded: 20.005 is recorded as 20.01.
	s.Add(Prescription{Cost: decimal.RequireFromString("10.00")})
	s.Add(Prescription{Cost: decimal.RequireFromString("20.005").Round(2)})

	if got := s.GrandTotal().StringFixed(2); got != "30.01" {
		t.Errorf("grand total = %s, want 30.01", got)
	}
}
