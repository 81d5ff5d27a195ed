package ingest

import (
	"fmt"
	"strings"
)

// Audit runs after a record has been persisted and emits advisory
// warnings about cells that sanitization had to drop. Warnings never
// change the accept/reject outcome: a case with a bad phone number is
// still a case.
func Audit(c CandidateRecord) []RowWarning {
	var warns []RowWarning

	if strings.TrimSpace(c.RawNationalID) != "" && c.NationalID == nil {
		warns = append(warns, RowWarning{
			RowIndex: c.RowIndex,
			Field:    FieldNationalID,
			Message:  fmt.Sprintf("kimlik no %q is not a valid 11-digit number", c.RawNationalID),
		})
	}

	if strings.TrimSpace(c.RawPhone) != "" && c.Phone == nil {
		warns = append(warns, RowWarning{
			RowIndex: c.RowIndex,
			Field:    FieldPhone,
			Message:  fmt.Sprintf("phone %q is too short to be a subscriber number", c.RawPhone),
		})
	}

	for _, af := range amountFields {
		raw := strings.TrimSpace(stringify(af.raw(c)))
		if raw == "" {
			continue
		}
		if v, ok := ParseLocaleNumber(af.raw(c)); !ok || v < 0 {
			warns = append(warns, RowWarning{
				RowIndex: c.RowIndex,
				Field:    af.name,
				Message:  fmt.Sprintf("%s %q is not a non-negative amount", af.name, raw),
			})
		}
	}

	// An empty counterparty is tolerated (the case id keys the record)
	// but worth surfacing: the column is usually present and polluted.
	if c.CounterpartyName == nil {
		msg := "counterparty name is empty"
		if strings.TrimSpace(c.RawCounterparty) != "" {
			msg = fmt.Sprintf("counterparty %q was discarded as address/id text", c.RawCounterparty)
		}
		warns = append(warns, RowWarning{
			RowIndex: c.RowIndex,
			Field:    FieldCounterparty,
			Message:  msg,
		})
	}

	return warns
}
