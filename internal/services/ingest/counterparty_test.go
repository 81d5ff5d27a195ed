package ingest

import (
	"strings"
	"testing"
)

func TestIsAddressLike(t *testing.T) {
	addressy := []string{
		"ATATÜRK MAHALLESİ 15. SOKAK NO: 3",
		"Çiçek Apartmanı Kat 2 Daire 5",
		"İSTANBUL",
		"Yeşilköy Mah. 34149",
		"A/B/C",
		strings.Repeat("x", 51),
		"CUMHURİYET CAD 12A",
	}
	for _, s := range addressy {
		if !IsAddressLike(s) {
			t.Fatalf("IsAddressLike(%q) = false, want true", s)
		}
	}

	namey := []string{"Mehmet Yılmaz", "Aylin Şahin", "Örnek Gıda Ltd Şti"}
	for _, s := range namey {
		if IsAddressLike(s) {
			t.Fatalf("IsAddressLike(%q) = true, want false", s)
		}
	}
}

func TestIsNameLike(t *testing.T) {
	good := []string{"Mehmet Yılmaz", "Örnek Tekstil Ltd. Şti.", "Nokta 2000", "Jane Doe"}
	for _, s := range good {
		if !IsNameLike(s) {
			t.Fatalf("IsNameLike(%q) = false, want true", s)
		}
	}

	bad := []string{
		"x",
		"",
		"ATATÜRK MAHALLESİ NO: 3",
		"%%%invalid%%%",
		// Digit-heavy strings are ids, not names.
		"A101",
		"1234567890123",
	}
	for _, s := range bad {
		if IsNameLike(s) {
			t.Fatalf("IsNameLike(%q) = true, want false", s)
		}
	}
}

func TestCleanCounterpartyName(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Mehmet Yılmaz", "Mehmet Yılmaz", true},
		{"Örnek Gıda Ltd Şti", "Örnek Gıda Ltd Şti", true},
		// Placeholder meaning "no real name provided".
		{"BORÇLU", "", false},
		{"borçlu", "", false},
		{"Borclu", "", false},
		// Misplaced kimlik number.
		{"12345678901", "", false},
		// Branch suffix after a slash is dropped.
		{"Jane Doe / MAIN-BRANCH", "Jane Doe", true},
		{"ATATÜRK MAH / ŞUBE", "", false},
		// Address text.
		{"Çiçek Sokak No: 5 Daire 3", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got := CleanCounterpartyName(c.in)
		if c.ok != (got != nil) {
			t.Fatalf("CleanCounterpartyName(%q) presence = %v, want %v", c.in, got != nil, c.ok)
		}
		if got != nil && *got != c.want {
			t.Fatalf("CleanCounterpartyName(%q) = %q, want %q", c.in, *got, c.want)
		}
	}
}
