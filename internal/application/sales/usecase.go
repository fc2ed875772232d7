package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/application/storage"
	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
	"github.com/jhoicas/superandes-api/pkg/logger"
)

// UseCase Sales Ledger y orquestador de ventas: términos de venta por
// (sucursal, producto), y la venta de una línea con emisión de factura.
type UseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	branchRepo   repository.BranchRepository
	productRepo  repository.ProductRepository
	termRepo     repository.SalesTermRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
	termRepo repository.SalesTermRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		branchRepo:   branchRepo,
		productRepo:  productRepo,
		termRepo:     termRepo,
		log:          log,
	}
}

// RegisterSalesTerm registra o actualiza los términos de venta de un
// producto en una sucursal (upsert idempotente). Solo exige existencia
// referencial de sucursal y producto.
func (uc *UseCase) RegisterSalesTerm(ctx context.Context, in dto.RegisterSalesTermRequest) error {
	if in.Price.LessThan(decimal.Zero) || in.ReorderLevel.LessThan(decimal.Zero) ||
		!in.RestockQty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.BranchNotFound(in.BranchID)
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ProductNotFound(in.ProductID)
	}
	return uc.termRepo.Upsert(&entity.SalesTerm{
		BranchID:     in.BranchID,
		ProductID:    in.ProductID,
		Price:        in.Price,
		ReorderLevel: in.ReorderLevel,
		RestockQty:   in.RestockQty,
		UpdatedAt:    time.Now(),
	})
}

// TermsFor devuelve los términos de venta del par (sucursal, producto).
func (uc *UseCase) TermsFor(ctx context.Context, branchID, productID int64) (*entity.SalesTerm, error) {
	term, err := uc.termRepo.Get(branchID, productID)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, domain.SalesTermNotFound(branchID, productID)
	}
	return term, nil
}

// Sell valida y confirma la venta de una línea: verifica cliente,
// sucursal y término de venta, descuenta las existencias de estante bajo
// bloqueo de fila y emite la factura, todo en una transacción. La venta no
// dispara reposición; esa evaluación es una operación aparte.
func (uc *UseCase) Sell(ctx context.Context, in dto.SellRequest) (*dto.InvoiceResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.CustomerNotFound(in.CustomerID)
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.BranchNotFound(in.BranchID)
	}

	var invoice *entity.Invoice
	err = uc.txRunner.RunSale(ctx, func(
		termRepo repository.SalesTermRepository,
		productRepo repository.ProductRepository,
		storageRepo repository.StorageRepository,
		invoiceRepo repository.InvoiceRepository,
		seq repository.Sequence,
	) error {
		term, err := termRepo.GetForUpdate(in.BranchID, in.ProductID)
		if err != nil {
			return err
		}
		if term == nil {
			return domain.NotSold(in.BranchID, in.ProductID)
		}
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ProductNotFound(in.ProductID)
		}

		now := time.Now()
		if err := storage.DeductFromShelves(storageRepo, in.BranchID, product, in.Quantity, now); err != nil {
			return err
		}

		id, err := seq.NextID()
		if err != nil {
			return err
		}
		invoice = &entity.Invoice{
			ID:         id,
			CustomerID: in.CustomerID,
			BranchID:   in.BranchID,
			Date:       now,
			Total:      term.Price.Mul(in.Quantity),
		}
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		line := entity.InvoiceLine{
			InvoiceID: invoice.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: term.Price,
		}
		if err := invoiceRepo.CreateLine(&line); err != nil {
			return err
		}
		invoice.Lines = append(invoice.Lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("invoice_id", invoice.ID).
		Int64("branch_id", invoice.BranchID).
		Int64("customer_id", invoice.CustomerID).
		Str("total", invoice.Total.String()).
		Msg("venta confirmada")
	return toInvoiceResponse(invoice), nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		BranchID:   inv.BranchID,
		Date:       inv.Date,
		Total:      inv.Total,
	}
	for _, l := range inv.Lines {
		resp.Lines = append(resp.Lines, dto.InvoiceLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return resp
}
