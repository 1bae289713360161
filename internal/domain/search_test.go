package domain

import "testing"

func TestMatches(t *testing.T) {
	fields := []string{"PT Maju Jaya", "SUP-001", "Jakarta"}

	if !Matches(fields, "") {
		t.Fatalf("empty term must match everything")
	}
	if !Matches(fields, "   ") {
		t.Fatalf("whitespace term must match everything")
	}
	if !Matches(fields, "maju") {
		t.Fatalf("case-insensitive substring should match")
	}
	if !Matches(fields, "SUP-001") {
		t.Fatalf("exact code should match")
	}
	if Matches(fields, "bandung") {
		t.Fatalf("absent term must not match")
	}
	if Matches(nil, "apa saja") {
		t.Fatalf("no fields can never match a non-empty term")
	}
}

type plainRow struct{ Name string }

func TestMatchesEntity(t *testing.T) {
	if !MatchesEntity(plainRow{Name: "x"}, "") {
		t.Fatalf("empty term matches even non-Searchable values")
	}
	if MatchesEntity(plainRow{Name: "x"}, "x") {
		t.Fatalf("non-Searchable value must not match a term")
	}
}
