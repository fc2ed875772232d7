package invoices

import (
	"context"
	"fmt"

	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// UseCase consulta de facturas y generación de su representación gráfica.
type UseCase struct {
	invoiceRepo  repository.InvoiceRepository
	branchRepo   repository.BranchRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    InvoicePDFGenerator
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	invoiceRepo repository.InvoiceRepository,
	branchRepo repository.BranchRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *UseCase {
	return &UseCase{
		invoiceRepo:  invoiceRepo,
		branchRepo:   branchRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// GetInvoice devuelve una factura con sus líneas.
func (uc *UseCase) GetInvoice(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.InvoiceNotFound(id)
	}
	return inv, nil
}

// DownloadInvoicePDF recupera la factura con sus datos relacionados y genera
// el PDF. Retorna los bytes del documento y el nombre de archivo sugerido.
func (uc *UseCase) DownloadInvoicePDF(ctx context.Context, id int64) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.InvoiceNotFound(id)
	}
	branch, err := uc.branchRepo.GetByID(inv.BranchID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener sucursal: %w", err)
	}
	if branch == nil {
		return nil, "", domain.BranchNotFound(inv.BranchID)
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.CustomerNotFound(inv.CustomerID)
	}

	lines := make([]InvoiceLineForPDF, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener producto %d: %w", l.ProductID, err)
		}
		name := fmt.Sprintf("producto %d", l.ProductID)
		if product != nil {
			name = product.Name
		}
		lines = append(lines, InvoiceLineForPDF{
			ProductName: name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.UnitPrice.Mul(l.Quantity),
		})
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, branch, customer, lines)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, fmt.Sprintf("factura_%d.pdf", inv.ID), nil
}
