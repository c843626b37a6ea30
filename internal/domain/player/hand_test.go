package player

import "testing"

func TestHandFromArmSlot(t *testing.T) {
	t.Parallel()

	cases := []struct {
		deg    float64
		want   Hand
		wantOK bool
	}{
		{30, HandRight, true},
		{90, HandRight, true},
		{150, HandRight, true},
		{210, HandLeft, true},
		{270, HandLeft, true},
		{330, HandLeft, true},
		// Bands are closed; just outside abstains.
		{29.9, HandUnknown, false},
		{150.1, HandUnknown, false},
		{0, HandUnknown, false},
		{180, HandUnknown, false},
		{359, HandUnknown, false},
		// Normalization wraps out-of-range input.
		{450, HandRight, true},
		{-90, HandLeft, true},
	}
	for _, tc := range cases {
		got, ok := HandFromArmSlot(tc.deg)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("HandFromArmSlot(%v): got=(%q,%t) want=(%q,%t)", tc.deg, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestInferHand(t *testing.T) {
	t.Parallel()

	// Majority of classified samples decides.
	if got := InferHand([]float64{90, 100, 270}, HandRight); got != HandRight {
		t.Fatalf("majority right: got=%q", got)
	}
	if got := InferHand([]float64{250, 260, 90}, HandRight); got != HandLeft {
		t.Fatalf("majority left: got=%q", got)
	}
	// Ties and abstentions fall back.
	if got := InferHand([]float64{90, 270}, HandLeft); got != HandLeft {
		t.Fatalf("tie must fall back, got=%q", got)
	}
	if got := InferHand([]float64{0, 180, 359}, HandRight); got != HandRight {
		t.Fatalf("all abstain must fall back, got=%q", got)
	}
	if got := InferHand(nil, HandRight); got != HandRight {
		t.Fatalf("no samples must fall back, got=%q", got)
	}
}
