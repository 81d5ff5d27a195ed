package models

import "time"

// CollectionCase is a stored collection case, keyed by the externally
// meaningful CaseID (takip/dosya number). All other fields are optional.
type CollectionCase struct {
	ID               string
	CaseID           string
	NationalID       *string
	DebtorName       *string
	CounterpartyName *string
	Phone            *string
	Address          *string
	City             *string
	Status           *string
	Principal        *float64
	Interest         *float64
	TotalDebt        *float64
	PaidAmount       *float64
	PromiseDate      *string
	OpenDate         *string
	CreatedAt        *time.Time
	UpdatedAt        *time.Time
}
