package ingest

import "testing"

func TestSanitizeText(t *testing.T) {
	if got := SanitizeText("  Mehmet\x00\x1f  Yılmaz \t"); got == nil || *got != "Mehmet Yılmaz" {
		t.Fatalf("got %v", deref(got))
	}
	if got := SanitizeText("   "); got != nil {
		t.Fatalf("expected nil for blank input, got %q", *got)
	}
	if got := SanitizeText(nil); got != nil {
		t.Fatalf("expected nil for absent input")
	}
	if got := SanitizeText(42.0); got == nil || *got != "42" {
		t.Fatalf("expected stringified number, got %v", deref(got))
	}
}

func TestSanitizePhone(t *testing.T) {
	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{"05551234567", "5551234567", true},
		{"0 555 123 45 67", "5551234567", true},
		{"905551234567", "5551234567", true},
		{"0905551234567", "5551234567", true},
		{"5551234567", "5551234567", true},
		{"(555) 123-45-67", "5551234567", true},
		// 7+ digits with no known shape pass through raw.
		{"2165554433", "2165554433", true},
		{"1234567", "1234567", true},
		{"123", "", false},
		{"", "", false},
		{nil, "", false},
	}
	for _, c := range cases {
		got := SanitizePhone(c.in)
		if c.ok != (got != nil) {
			t.Fatalf("SanitizePhone(%v) presence = %v, want %v", c.in, got != nil, c.ok)
		}
		if got != nil && *got != c.want {
			t.Fatalf("SanitizePhone(%v) = %q, want %q", c.in, *got, c.want)
		}
	}
}

func TestSanitizeNationalID(t *testing.T) {
	if got := SanitizeNationalID("12345678901"); got == nil || *got != "12345678901" {
		t.Fatalf("got %v", deref(got))
	}
	if got := SanitizeNationalID("123 456 789 01"); got == nil || *got != "12345678901" {
		t.Fatalf("expected digits-only pass, got %v", deref(got))
	}
	for _, bad := range []any{"01234567890", "00000000000", "1234567890", "123456789012", "", nil} {
		if got := SanitizeNationalID(bad); got != nil {
			t.Fatalf("SanitizeNationalID(%v) = %q, want nil", bad, *got)
		}
	}
}

func TestSanitizeDate_excelSerial(t *testing.T) {
	// 25569 is the Unix epoch in Excel serial days.
	if got := SanitizeDate("25569"); got == nil || *got != "1970-01-01" {
		t.Fatalf("got %v", deref(got))
	}
	// 2024-01-01.
	if got := SanitizeDate("45292"); got == nil || *got != "2024-01-01" {
		t.Fatalf("got %v", deref(got))
	}
}

func TestSanitizeDate_passthrough(t *testing.T) {
	if got := SanitizeDate(" 12.03.2024 "); got == nil || *got != "12.03.2024" {
		t.Fatalf("got %v", deref(got))
	}
	// 4 or 6 digits are not serials.
	if got := SanitizeDate("2024"); got == nil || *got != "2024" {
		t.Fatalf("got %v", deref(got))
	}
	if got := SanitizeDate(""); got != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
