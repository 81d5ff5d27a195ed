package database

import (
	"context"
	"errors"
	"fmt"

	"tahsilat_import/internal/config/connections/postgres"
	"tahsilat_import/internal/models"
	"tahsilat_import/internal/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CaseRepo persists collection cases, keyed by the unique case_id column.
// Every error that leaves this package is a *ports.StorageError so the
// orchestrator can tell contention from constraint violations.
type CaseRepo struct {
	pg    *postgres.Postgres
	table string
}

func NewCaseRepo(pg *postgres.Postgres, table string) *CaseRepo {
	if table == "" {
		table = "collection_cases"
	}
	return &CaseRepo{pg: pg, table: table}
}

const caseColumns = `
	id, case_id, national_id, debtor_name, counterparty_name, phone,
	address, city, status, principal, interest, total_debt, paid_amount,
	promise_date, open_date, created_at, updated_at`

func (r *CaseRepo) FindByCaseID(ctx context.Context, caseID string) (*models.CollectionCase, error) {
	query := `SELECT ` + caseColumns + ` FROM ` + r.table + ` WHERE case_id = $1`

	c, err := scanCase(r.pg.Pool.QueryRow(ctx, query, caseID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("find case", err)
	}
	return c, nil
}

func (r *CaseRepo) Create(ctx context.Context, c *models.CollectionCase) (*models.CollectionCase, error) {
	query := `
		INSERT INTO ` + r.table + ` (
			id, case_id, national_id, debtor_name, counterparty_name, phone,
			address, city, status, principal, interest, total_debt, paid_amount,
			promise_date, open_date, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11, $12,
			$13, $14, NOW(), NOW()
		)
		RETURNING ` + caseColumns

	row := r.pg.Pool.QueryRow(ctx, query,
		c.CaseID, c.NationalID, c.DebtorName, c.CounterpartyName, c.Phone,
		c.Address, c.City, c.Status, c.Principal, c.Interest, c.TotalDebt, c.PaidAmount,
		c.PromiseDate, c.OpenDate,
	)

	out, err := scanCase(row)
	if err != nil {
		return nil, classify("create case", err)
	}
	return out, nil
}

// Update overwrites the case fields present on the incoming record;
// nil pointers keep the stored value.
func (r *CaseRepo) Update(ctx context.Context, caseID string, c *models.CollectionCase) (*models.CollectionCase, error) {
	query := `
		UPDATE ` + r.table + ` SET
			national_id = COALESCE($2, national_id),
			debtor_name = COALESCE($3, debtor_name),
			counterparty_name = COALESCE($4, counterparty_name),
			phone = COALESCE($5, phone),
			address = COALESCE($6, address),
			city = COALESCE($7, city),
			status = COALESCE($8, status),
			principal = COALESCE($9, principal),
			interest = COALESCE($10, interest),
			total_debt = COALESCE($11, total_debt),
			paid_amount = COALESCE($12, paid_amount),
			promise_date = COALESCE($13, promise_date),
			open_date = COALESCE($14, open_date),
			updated_at = NOW()
		WHERE case_id = $1
		RETURNING ` + caseColumns

	row := r.pg.Pool.QueryRow(ctx, query,
		caseID, c.NationalID, c.DebtorName, c.CounterpartyName, c.Phone,
		c.Address, c.City, c.Status, c.Principal, c.Interest, c.TotalDebt, c.PaidAmount,
		c.PromiseDate, c.OpenDate,
	)

	out, err := scanCase(row)
	if err != nil {
		return nil, classify("update case", err)
	}
	return out, nil
}

func (r *CaseRepo) DeleteByCaseIDs(ctx context.Context, caseIDs []string) (int64, error) {
	if len(caseIDs) == 0 {
		return 0, nil
	}
	tag, err := r.pg.Pool.Exec(ctx, `DELETE FROM `+r.table+` WHERE case_id = ANY($1)`, caseIDs)
	if err != nil {
		return 0, classify("delete cases", err)
	}
	return tag.RowsAffected(), nil
}

func scanCase(row pgx.Row) (*models.CollectionCase, error) {
	var c models.CollectionCase
	err := row.Scan(
		&c.ID, &c.CaseID, &c.NationalID, &c.DebtorName, &c.CounterpartyName, &c.Phone,
		&c.Address, &c.City, &c.Status, &c.Principal, &c.Interest, &c.TotalDebt, &c.PaidAmount,
		&c.PromiseDate, &c.OpenDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// classify maps pg error codes onto the storage error taxonomy:
// 23505 → conflict, 23502/23503 → constraint, lock/serialization/timeout
// codes → transient, everything else → internal.
func classify(op string, err error) error {
	kind := ports.StorageInternal

	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		switch pgErr.Code {
		case "23505":
			kind = ports.StorageConflict
		case "23502", "23503":
			kind = ports.StorageConstraint
		case "40001", "40P01", "55P03", "57014":
			kind = ports.StorageTransient
		}
	case errors.Is(err, context.DeadlineExceeded):
		kind = ports.StorageTransient
	}

	return &ports.StorageError{Kind: kind, Err: fmt.Errorf("%s: %w", op, err)}
}
