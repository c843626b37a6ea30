package pitch

import "testing"

func TestStandardizePitchType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"FF", "4FB"},
		{"Fastball", "4FB"},
		{"4-Seam", "4FB"},
		{"ft", "2FB"},
		{"2-seam", "2FB"},
		{"Sinker", "SI"},
		{"FC", "CT"},
		{"cutter", "CT"},
		{"Curveball", "CB"},
		{"CU", "CB"},
		{"Slider", "SL"},
		{"changeup", "CH"},
		{"Splitter", "SPL"},
		{"knuckleball", "KN"},
		{"Screwball", "SB"},
		{" ff ", "4FB"},
		{"", ""},
		// Unknown codes pass through uppercased.
		{"EP", "EP"},
		{"eephus", "EEPHUS"},
	}
	for _, tc := range cases {
		if got := StandardizePitchType(tc.in); got != tc.want {
			t.Fatalf("StandardizePitchType(%q): got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestStandardizePitchType_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"FF", "Fastball", "Slider", "EP", "splitter"} {
		once := StandardizePitchType(in)
		if twice := StandardizePitchType(once); twice != once {
			t.Fatalf("StandardizePitchType not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
