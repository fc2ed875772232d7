package invoices

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
)

// InvoiceLineForPDF línea de detalle enriquecida con el nombre del producto.
type InvoiceLineForPDF struct {
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// InvoicePDFGenerator puerto de generación de la representación gráfica de
// la factura; lo implementa la infraestructura (Maroto).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		branch *entity.Branch,
		customer *entity.Customer,
		lines []InvoiceLineForPDF,
	) ([]byte, error)
}
