package pricing

import (
	"math"
	"testing"
)

func TestForModel(t *testing.T) {
	r, err := ForModel("opus")
	if err != nil {
		t.Fatalf("ForModel: %v", err)
	}
	if r.Output != 75.00 {
		t.Errorf("opus output rate = %v, want 75.00", r.Output)
	}

	if _, err := ForModel("gpt-9"); err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestCost(t *testing.T) {
	r, err := ForModel("sonnet")
	if err != nil {
		t.Fatal(err)
	}
	// 1M input + 1M output + 2M cache write + 10M cache read:
	// 3.00 + 15.00 + 7.50 + 3.00 = 28.50
	got := r.Cost(1_000_000, 1_000_000, 2_000_000, 10_000_000)
	if math.Abs(got-28.50) > 1e-9 {
		t.Errorf("Cost = %v, want 28.50", got)
	}
}

func TestCost_Zero(t *testing.T) {
	r, _ := ForModel("haiku")
	if got := r.Cost(0, 0, 0, 0); got != 0 {
		t.Errorf("Cost of zero tokens = %v", got)
	}
}
