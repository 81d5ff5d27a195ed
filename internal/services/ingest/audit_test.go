package ingest

import "testing"

func warnFields(warns []RowWarning) map[string]int {
	out := map[string]int{}
	for _, w := range warns {
		out[w.Field]++
	}
	return out
}

func TestAudit_flagsDroppedValues(t *testing.T) {
	cand := BuildCandidate(RawRow{
		"Dosya No":     "TK-1",
		"TC Kimlik No": "999",
		"Telefon":      "123",
		"Muhatap":      "ATATÜRK MAH NO:3",
		"Toplam Borç":  "bilinmiyor",
	}, 2)

	warns := Audit(cand)
	fields := warnFields(warns)

	if fields[FieldNationalID] != 1 {
		t.Fatalf("expected national id warning, got %+v", warns)
	}
	if fields[FieldPhone] != 1 {
		t.Fatalf("expected phone warning, got %+v", warns)
	}
	if fields[FieldTotalDebt] != 1 {
		t.Fatalf("expected amount warning, got %+v", warns)
	}
	if fields[FieldCounterparty] != 1 {
		t.Fatalf("expected counterparty warning, got %+v", warns)
	}
	for _, w := range warns {
		if w.RowIndex != 2 {
			t.Fatalf("warning lost its row index: %+v", w)
		}
	}
}

func TestAudit_cleanRowOnlyCounterpartyWhenAbsent(t *testing.T) {
	cand := BuildCandidate(RawRow{
		"Dosya No":     "TK-1",
		"TC Kimlik No": "12345678901",
		"Telefon":      "05551234567",
		"Muhatap":      "Mehmet Yılmaz",
		"Toplam Borç":  "100",
	}, 0)

	if warns := Audit(cand); len(warns) != 0 {
		t.Fatalf("expected no warnings, got %+v", warns)
	}
}

func TestAudit_emptyCounterpartyIsAdvisory(t *testing.T) {
	cand := BuildCandidate(RawRow{"Dosya No": "TK-1"}, 0)
	warns := Audit(cand)
	if len(warns) != 1 || warns[0].Field != FieldCounterparty {
		t.Fatalf("expected a single counterparty warning, got %+v", warns)
	}
}
