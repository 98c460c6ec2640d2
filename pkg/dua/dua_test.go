package dua

import "testing"

func TestMatches(t *testing.T) {
	e := &Entry{
		ID:     1,
		Title:  "Morning Dua",
		Arabic: "أَصْبَحْنَا وَأَصْبَحَ الْمُلْكُ لِلَّهِ",
		Somali: "Waxaan gallay subax",
	}

	tests := []struct {
		query string
		want  bool
	}{
		{query: "morning", want: true},
		{query: "gallay subax", want: true},
		{query: "أَصْبَحْنَا", want: true},
		{query: "evening", want: false},
		{query: "morningdua", want: false},
		{query: "", want: true},
	}
	for _, tt := range tests {
		if got := e.Matches(tt.query); got != tt.want {
			t.Fatalf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestMatchesWithoutArabic(t *testing.T) {
	e := &Entry{ID: 2, Title: "Evening Dua", Somali: "..."}
	if e.Matches("x") {
		t.Fatalf("expected no match for entry without arabic text")
	}
}

func TestHasInfo(t *testing.T) {
	if (&Entry{}).HasInfo() {
		t.Fatalf("expected empty entry to have no info")
	}
	if !(&Entry{Context: "Subaxdii"}).HasInfo() {
		t.Fatalf("expected context to count as info")
	}
}

func TestRow(t *testing.T) {
	id, title, category := (&Entry{ID: 7, Title: "Travel", Category: "Safar"}).Row()
	if id != "7" || title != "Travel" || category != "Safar" {
		t.Fatalf("unexpected row %q %q %q", id, title, category)
	}
}
