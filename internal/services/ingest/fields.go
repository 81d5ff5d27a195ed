package ingest

// Logical field names, used in errors, warnings and data-quality counts.
const (
	FieldCaseID       = "caseId"
	FieldNationalID   = "nationalId"
	FieldDebtorName   = "debtorName"
	FieldCounterparty = "counterpartyName"
	FieldPhone        = "phone"
	FieldAddress      = "address"
	FieldCity         = "city"
	FieldStatus       = "status"
	FieldPrincipal    = "principal"
	FieldInterest     = "interest"
	FieldTotalDebt    = "totalDebt"
	FieldPaidAmount   = "paidAmount"
	FieldPromiseDate  = "promiseDate"
	FieldOpenDate     = "openDate"
)

// headerCandidates lists the known header spellings per logical field, in
// priority order. These are product data collected from real uploads, not
// algorithm: extend the lists, don't special-case the lookup.
var headerCandidates = map[string][]string{
	FieldCaseID:       {"durum tanıtıcı", "dosya no", "takip no", "case id"},
	FieldNationalID:   {"tc kimlik no", "tckn", "kimlik no", "tc no"},
	FieldDebtorName:   {"borçlu adı", "borçlu ad soyad", "ad soyad"},
	FieldCounterparty: {"muhatap adı", "muhatap"},
	FieldPhone:        {"cep telefonu", "telefon", "gsm"},
	FieldAddress:      {"adres"},
	FieldCity:         {"şehir", "il"},
	FieldStatus:       {"takip durumu", "dosya durumu"},
	FieldPrincipal:    {"asıl alacak", "anapara"},
	FieldInterest:     {"işlemiş faiz", "faiz"},
	FieldTotalDebt:    {"toplam borç", "toplam alacak"},
	FieldPaidAmount:   {"ödenen", "tahsilat tutarı"},
	FieldPromiseDate:  {"ödeme sözü tarihi", "söz tarihi"},
	FieldOpenDate:     {"takip tarihi", "dosya tarihi"},
}

// CandidateRecord is the normalized per-row record before validation.
// Raw values ride along so the auditor can flag cells that sanitization
// had to drop.
type CandidateRecord struct {
	RowIndex int

	CaseID string

	NationalID    *string
	RawNationalID string

	Phone    *string
	RawPhone string

	CounterpartyName *string
	RawCounterparty  string

	DebtorName *string
	Address    *string
	City       *string
	Status     *string

	// Amounts stay raw here; the validator runs the locale parser.
	Principal  any
	Interest   any
	TotalDebt  any
	PaidAmount any

	PromiseDate *string
	OpenDate    *string
}

func lookupRaw(row RawRow, field string) any {
	v, ok := Lookup(row, headerCandidates[field])
	if !ok {
		return nil
	}
	return v
}

func lookupText(row RawRow, field string) *string {
	return SanitizeText(lookupRaw(row, field))
}

// BuildCandidate extracts and sanitizes one raw row.
func BuildCandidate(row RawRow, rowIndex int) CandidateRecord {
	c := CandidateRecord{RowIndex: rowIndex}

	if id := SanitizeText(lookupRaw(row, FieldCaseID)); id != nil {
		c.CaseID = *id
	}

	rawID := lookupRaw(row, FieldNationalID)
	c.RawNationalID = stringify(rawID)
	c.NationalID = SanitizeNationalID(rawID)

	rawPhone := lookupRaw(row, FieldPhone)
	c.RawPhone = stringify(rawPhone)
	c.Phone = SanitizePhone(rawPhone)

	rawCp := lookupRaw(row, FieldCounterparty)
	c.RawCounterparty = stringify(rawCp)
	c.CounterpartyName = CleanCounterpartyName(rawCp)

	c.DebtorName = lookupText(row, FieldDebtorName)
	c.Address = lookupText(row, FieldAddress)
	c.City = lookupText(row, FieldCity)
	c.Status = lookupText(row, FieldStatus)

	c.Principal = lookupRaw(row, FieldPrincipal)
	c.Interest = lookupRaw(row, FieldInterest)
	c.TotalDebt = lookupRaw(row, FieldTotalDebt)
	c.PaidAmount = lookupRaw(row, FieldPaidAmount)

	c.PromiseDate = SanitizeDate(lookupRaw(row, FieldPromiseDate))
	c.OpenDate = SanitizeDate(lookupRaw(row, FieldOpenDate))

	return c
}
