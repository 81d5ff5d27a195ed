package ingest

import (
	"fmt"
	"strings"

	"tahsilat_import/internal/models"
)

// amountFields pairs each monetary field with an accessor into the
// candidate's raw value and a setter on the stored record.
var amountFields = []struct {
	name string
	raw  func(CandidateRecord) any
	set  func(*models.CollectionCase, *float64)
}{
	{FieldPrincipal, func(c CandidateRecord) any { return c.Principal }, func(m *models.CollectionCase, v *float64) { m.Principal = v }},
	{FieldInterest, func(c CandidateRecord) any { return c.Interest }, func(m *models.CollectionCase, v *float64) { m.Interest = v }},
	{FieldTotalDebt, func(c CandidateRecord) any { return c.TotalDebt }, func(m *models.CollectionCase, v *float64) { m.TotalDebt = v }},
	{FieldPaidAmount, func(c CandidateRecord) any { return c.PaidAmount }, func(m *models.CollectionCase, v *float64) { m.PaidAmount = v }},
}

// Validate enforces the per-row accept/reject rules. On accept it returns
// the fully converted record; on reject it returns every accumulated
// error. A record that fails validation never reaches storage.
func Validate(c CandidateRecord) (*models.CollectionCase, []RowError) {
	if strings.TrimSpace(c.CaseID) == "" {
		return nil, []RowError{{
			RowIndex:   c.RowIndex,
			Field:      FieldCaseID,
			Kind:       ErrRequiredField,
			Message:    "case id is missing or empty",
			Suggestion: "fill the durum tanıtıcı / dosya no column for every row",
		}}
	}

	rec := &models.CollectionCase{
		CaseID:           strings.TrimSpace(c.CaseID),
		NationalID:       c.NationalID,
		DebtorName:       c.DebtorName,
		CounterpartyName: c.CounterpartyName,
		Phone:            c.Phone,
		Address:          c.Address,
		City:             c.City,
		Status:           c.Status,
		PromiseDate:      c.PromiseDate,
		OpenDate:         c.OpenDate,
	}

	var errs []RowError
	for _, af := range amountFields {
		v, ok := ParseLocaleNumber(af.raw(c))
		if !ok {
			// Unparseable amounts stay empty; the auditor flags them.
			continue
		}
		if v < 0 {
			errs = append(errs, RowError{
				RowIndex:   c.RowIndex,
				Field:      af.name,
				Kind:       ErrValidation,
				Message:    fmt.Sprintf("%s is negative (%.2f)", af.name, v),
				Suggestion: "amounts must be zero or positive",
			})
			continue
		}
		vv := v
		af.set(rec, &vv)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return rec, nil
}
