package repository

import (
	"time"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia de facturas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateLine(line *entity.InvoiceLine) error
	GetByID(id int64) (*entity.Invoice, error)
	ListByCustomerInRange(customerID int64, from, to time.Time) ([]*entity.Invoice, error)
}
