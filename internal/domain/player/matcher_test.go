package player

import (
	"testing"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
)

func testRoster() []Player {
	return []Player{
		{ID: 1, FirstName: "Miles", LastName: "Okafor", Throws: HandRight, Active: true, RapsodoID: "88421"},
		{ID: 2, FirstName: "Dane", LastName: "Whitlock", Throws: HandLeft, Active: true},
		{ID: 3, FirstName: "Reyes", LastName: "Calloway", Throws: HandRight, Active: true},
	}
}

func TestMatchName_ExternalIDWinsOverName(t *testing.T) {
	t.Parallel()

	// The name says Whitlock but the Rapsodo ID belongs to Okafor; the ID is
	// authoritative.
	got := MatchName("Dane Whitlock", testRoster(), "88421", datasource.VendorRapsodo)
	if got == nil {
		t.Fatalf("expected a match")
	}
	if got.Player.ID != 1 || got.Method != MatchExternalID || got.Confidence != ConfidenceHigh {
		t.Fatalf("unexpected match: player=%d method=%s confidence=%s", got.Player.ID, got.Method, got.Confidence)
	}
}

func TestMatchName_Tiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		wantID     int64
		wantMethod MatchMethod
		wantConf   Confidence
	}{
		{"Miles Okafor", 1, MatchExactName, ConfidenceHigh},
		{"miles okafor", 1, MatchExactName, ConfidenceHigh},
		{"Whitlock", 2, MatchLastName, ConfidenceMedium},
		{"Calloway Reyes", 3, MatchReversed, ConfidenceHigh},
		{"J. Okafor", 1, MatchPartial, ConfidenceLow},
	}
	for _, tc := range cases {
		got := MatchName(tc.name, testRoster(), "", datasource.VendorRapsodo)
		if got == nil {
			t.Fatalf("MatchName(%q): expected a match", tc.name)
		}
		if got.Player.ID != tc.wantID || got.Method != tc.wantMethod || got.Confidence != tc.wantConf {
			t.Fatalf("MatchName(%q): got player=%d method=%s confidence=%s, want player=%d method=%s confidence=%s",
				tc.name, got.Player.ID, got.Method, got.Confidence, tc.wantID, tc.wantMethod, tc.wantConf)
		}
	}
}

func TestMatchName_NoMatch(t *testing.T) {
	t.Parallel()

	if got := MatchName("Sho Tanaka", testRoster(), "", datasource.VendorRapsodo); got != nil {
		t.Fatalf("expected nil for unmatched name, got player=%d", got.Player.ID)
	}
	if got := MatchName("  ", testRoster(), "", datasource.VendorRapsodo); got != nil {
		t.Fatalf("expected nil for blank name")
	}
}

func TestMatchName_DuplicatesPickHighestConfidenceStable(t *testing.T) {
	t.Parallel()

	roster := []Player{
		{ID: 1, FirstName: "Alex", LastName: "Rivera", Active: true},
		{ID: 2, FirstName: "Jordan", LastName: "Rivera", Active: true},
	}

	// "Rivera" is an exact last-name hit on both entries; the first roster
	// entry wins the tie and the ambiguity is reported.
	got := MatchName("Rivera", roster, "", datasource.VendorRapsodo)
	if got == nil {
		t.Fatalf("expected a match")
	}
	if !got.HasDuplicates {
		t.Fatalf("expected HasDuplicates")
	}
	if got.Player.ID != 1 {
		t.Fatalf("tie must keep roster order, got player=%d", got.Player.ID)
	}
	if len(got.AllMatches) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got.AllMatches))
	}

	// Exact full name outranks the other entry's partial hit.
	got = MatchName("Jordan Rivera", roster, "", datasource.VendorRapsodo)
	if got == nil {
		t.Fatalf("expected a match")
	}
	if got.Player.ID != 2 || got.Method != MatchExactName {
		t.Fatalf("expected exact-name winner, got player=%d method=%s", got.Player.ID, got.Method)
	}
}

func TestParseName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in          string
		first, last string
	}{
		{"", "Unknown", "Player"},
		{"   ", "Unknown", "Player"},
		{"Ichiro", "Ichiro", "Unknown"},
		{"Miles Okafor", "Miles", "Okafor"},
		{"Jan van der Berg", "Jan", "van der Berg"},
	}
	for _, tc := range cases {
		first, last := ParseName(tc.in)
		if first != tc.first || last != tc.last {
			t.Fatalf("ParseName(%q): got=(%q,%q) want=(%q,%q)", tc.in, first, last, tc.first, tc.last)
		}
	}
}
