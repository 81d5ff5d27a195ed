package ingest

import "testing"

func TestValidate_missingCaseID(t *testing.T) {
	cand := BuildCandidate(RawRow{
		"Dosya No":    "   ",
		"Muhatap":     "Mehmet Yılmaz",
		"Toplam Borç": "100",
	}, 4)

	rec, errs := Validate(cand)
	if rec != nil {
		t.Fatalf("expected invalid record")
	}
	if len(errs) != 1 || errs[0].Kind != ErrRequiredField || errs[0].Field != FieldCaseID {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if errs[0].RowIndex != 4 {
		t.Fatalf("expected row index carried through, got %d", errs[0].RowIndex)
	}
}

func TestValidate_negativeAmount(t *testing.T) {
	cand := BuildCandidate(RawRow{
		"Dosya No":    "TK-9",
		"Toplam Borç": "-5",
		"Ödenen":      "10",
	}, 0)

	rec, errs := Validate(cand)
	if rec != nil {
		t.Fatalf("negative amount must invalidate the row")
	}
	if len(errs) != 1 || errs[0].Kind != ErrValidation || errs[0].Field != FieldTotalDebt {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestValidate_fullRow(t *testing.T) {
	cand := BuildCandidate(RawRow{
		"Durum Tanıtıcısı": "TK-1",
		"TC Kimlik No":     "12345678901",
		"Borçlu Adı":       "Mehmet  Yılmaz",
		"Muhatap":          "Örnek Gıda Ltd Şti",
		"Cep Telefonu":     "0555 123 45 67",
		"Toplam Borç":      "1.234,56",
		"Ödenen":           "100",
		"Takip Tarihi":     "45292",
	}, 0)

	rec, errs := Validate(cand)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if rec.CaseID != "TK-1" {
		t.Fatalf("case id = %q", rec.CaseID)
	}
	if rec.NationalID == nil || *rec.NationalID != "12345678901" {
		t.Fatalf("national id = %v", rec.NationalID)
	}
	if rec.DebtorName == nil || *rec.DebtorName != "Mehmet Yılmaz" {
		t.Fatalf("debtor name = %v", rec.DebtorName)
	}
	if rec.CounterpartyName == nil || *rec.CounterpartyName != "Örnek Gıda Ltd Şti" {
		t.Fatalf("counterparty = %v", rec.CounterpartyName)
	}
	if rec.Phone == nil || *rec.Phone != "5551234567" {
		t.Fatalf("phone = %v", rec.Phone)
	}
	if rec.TotalDebt == nil || *rec.TotalDebt != 1234.56 {
		t.Fatalf("total debt = %v", rec.TotalDebt)
	}
	if rec.PaidAmount == nil || *rec.PaidAmount != 100 {
		t.Fatalf("paid = %v", rec.PaidAmount)
	}
	if rec.OpenDate == nil || *rec.OpenDate != "2024-01-01" {
		t.Fatalf("open date = %v", rec.OpenDate)
	}
}

func TestValidate_unparseableAmountIsNotAnError(t *testing.T) {
	cand := BuildCandidate(RawRow{
		"Dosya No":    "TK-2",
		"Toplam Borç": "bilinmiyor",
	}, 0)

	rec, errs := Validate(cand)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if rec.TotalDebt != nil {
		t.Fatalf("expected empty total debt, got %v", *rec.TotalDebt)
	}
}
