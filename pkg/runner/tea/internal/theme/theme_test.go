package theme

import "testing"

func TestDarkTextOnLightBadges(t *testing.T) {
	tests := []struct {
		hex  string
		dark bool
	}{
		{hex: "#fde68a", dark: true},
		{hex: "#ffffff", dark: true},
		{hex: "#1e3a8a", dark: false},
		{hex: "#000000", dark: false},
	}
	for _, tt := range tests {
		if got := darkText(badgeColor(tt.hex)); got != tt.dark {
			t.Fatalf("darkText(%s) = %v, want %v", tt.hex, got, tt.dark)
		}
	}
}

func TestBadgeColorFallback(t *testing.T) {
	if got := badgeColor("not-a-colour").Hex(); got != fallbackBadge {
		t.Fatalf("expected fallback %s, got %s", fallbackBadge, got)
	}
	if got := badgeColor("").Hex(); got != fallbackBadge {
		t.Fatalf("expected fallback for empty colour, got %s", got)
	}
}
