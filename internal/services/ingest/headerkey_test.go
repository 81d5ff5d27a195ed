package ingest

import "testing"

func TestNormalizeKey_headerVariants(t *testing.T) {
	variants := []string{
		"Durum tanıtıcısı",
		"DURUM TANITICISI",
		"durum_tanitici_si",
		"Durum-Tanıtıcısı",
		"  durum  tanıtıcısı  ",
	}
	want := "durumtaniticisi"
	for _, v := range variants {
		if got := NormalizeKey(v); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestNormalizeKey_turkishLetters(t *testing.T) {
	cases := map[string]string{
		"Şehir":         "sehir",
		"İşlemiş Faiz":  "islemisfaiz",
		"Toplam Borç":   "toplamborc",
		"Ödeme Sözü":    "odemesozu",
		"Borçlu Adı":    "borcluadi",
		"TÜRKÇE ĞÜŞİÖÇ": "turkcegusioc",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLookup_exactAndPrefix(t *testing.T) {
	row := RawRow{
		"Durum Tanıtıcısı": " TK-001 ",
		"Muhatap Adı 2":    "ignored duplicate",
	}

	// Candidate normalizes to a prefix of the row key.
	v, ok := Lookup(row, []string{"durum tanıtıcı"})
	if !ok {
		t.Fatalf("expected prefix match")
	}
	if v != "TK-001" {
		t.Fatalf("expected trimmed value, got %q", v)
	}
}

func TestLookup_priorityOrder(t *testing.T) {
	row := RawRow{
		"Dosya No": "D-1",
		"Takip No": "T-1",
	}
	v, ok := Lookup(row, []string{"takip no", "dosya no"})
	if !ok || v != "T-1" {
		t.Fatalf("expected first candidate to win, got %v ok=%v", v, ok)
	}
}

func TestLookup_miss(t *testing.T) {
	row := RawRow{"Adres": "somewhere"}
	if _, ok := Lookup(row, []string{"telefon", "gsm"}); ok {
		t.Fatalf("expected no match")
	}
}

func TestLookup_nonStringValue(t *testing.T) {
	row := RawRow{"Toplam Borç": 1500.0}
	v, ok := Lookup(row, []string{"toplam borç"})
	if !ok {
		t.Fatalf("expected match")
	}
	if v != 1500.0 {
		t.Fatalf("expected numeric passthrough, got %v", v)
	}
}
