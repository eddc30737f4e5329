package calc

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestQuantityNeeded(t *testing.T) {
	for a := 1; a <= 4; a++ {
		for b := 1; b <= 6; b++ {
			for c := 1; c <= 90; c += 7 {
				if got := QuantityNeeded(a, b, c); got != a*b*c {
					t.Fatalf("QuantityNeeded(%d, %d, %d) = %d, want %d", a, b, c, got, a*b*c)
				}
			}
		}
	}
}

func TestCheckedQuantity(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c int
		want    int
		ok      bool
	}{
		{"small", 1, 3, 10, 30, true},
		{"max int", math.MaxInt, 1, 1, math.MaxInt, true},
		{"tablets times doses overflow", 3037000500, 3037000500, 1, 0, false},
		{"days overflow", 3037000500, 3037000500, 2, 0, false},
		{"huge days", 2, 2, math.MaxInt / 2, 0, false},
		{"zero", 0, 3, 10, 0, false},
		{"negative", -1, 3, 10, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CheckedQuantity(tt.a, tt.b, tt.c)
			if ok != tt.ok || got != tt.want {
				t.Errorf("CheckedQuantity(%d, %d, %d) = %d, %v; want %d, %v", tt.a, tt.b, tt.c, got, ok, tt.want, tt.ok)
			}
			if ok && got != QuantityNeeded(tt.a, tt.b, tt.c) {
				t.Errorf("disagrees with QuantityNeeded")
			}
		})
	}
}

func TestDaysSupplyFromQuantity(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		got, err := DaysSupplyFromQuantity(30, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 10 {
			t.Errorf("got %f, want 10", got)
		}
	})

	t.Run("fractional", func(t *testing.T) {
		got, err := DaysSupplyFromQuantity(10, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 3.3333, 0.001) {
			t.Errorf("got %f, want ~3.333", got)
		}
	})

	t.Run("zero tablets per day", func(t *testing.T) {
		_, err := DaysSupplyFromQuantity(30, 0)
		if !errors.Is(err, ErrZeroTabletsPerDay) {
			t.Errorf("err = %v, want ErrZeroTabletsPerDay", err)
		}
	})
}

func TestFrequencyPhrase(t *testing.T) {
	tests := []struct {
		doses int
		want  string
	}{
		{1, "once daily"},
		{2, "twice daily"},
		{3, "three times daily"},
		{4, "four times daily"},
		{5, "5 times daily"},
		{12, "12 times daily"},
	}
	for _, tt := range tests {
		if got := FrequencyPhrase(tt.doses); got != tt.want {
			t.Errorf("FrequencyPhrase(%d) = %q, want %q", tt.doses, got, tt.want)
		}
	}
}

func TestSig(t *testing.T) {
	tests := []struct {
		tablets   int
		frequency string
		want      string
	}{
		{1, "once daily", "Take 1 tablet once daily"},
		{2, "twice daily", "Take 2 tablets twice daily"},
		{3, "5 times daily", "Take 3 tablets 5 times daily"},
	}
	for _, tt := range tests {
		if got := Sig(tt.tablets, tt.frequency); got != tt.want {
			t.Errorf("Sig(%d, %q) = %q, want %q", tt.tablets, tt.frequency, got, tt.want)
		}
	}
}
