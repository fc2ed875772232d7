package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create inserta la cabecera de la factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, branch_id, date, total)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.BranchID, invoice.Date, invoice.Total)
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

// CreateLine inserta una línea de detalle.
func (r *InvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	query := `
		INSERT INTO invoice_lines (invoice_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		line.InvoiceID, line.ProductID, line.Quantity, line.UnitPrice)
	if err != nil {
		return fmt.Errorf("create invoice line: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) loadLines(invoiceID int64) ([]entity.InvoiceLine, error) {
	query := `
		SELECT invoice_id, product_id, quantity, unit_price
		FROM invoice_lines WHERE invoice_id = $1
		ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("load invoice lines: %w", err)
	}
	defer rows.Close()

	var out []entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.InvoiceID, &l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// GetByID obtiene la factura con sus líneas; nil si no existe.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	query := `SELECT id, customer_id, branch_id, date, total FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.BranchID, &inv.Date, &inv.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.Lines, err = r.loadLines(inv.ID)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListByCustomerInRange devuelve las facturas de un cliente en [from, to],
// con sus líneas, ordenadas por fecha.
func (r *InvoiceRepo) ListByCustomerInRange(customerID int64, from, to time.Time) ([]*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, branch_id, date, total
		FROM invoices
		WHERE customer_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, id`
	rows, err := r.q.Query(context.Background(), query, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list invoices by customer: %w", err)
	}
	defer rows.Close()

	var out []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.BranchID, &inv.Date, &inv.Total); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range out {
		inv.Lines, err = r.loadLines(inv.ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
