package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// UseCase consultas de solo lectura sobre el estado del motor: dinero
// recolectado por sucursal, ventas de un cliente e índices de ocupación.
type UseCase struct {
	branchRepo   repository.BranchRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	reportRepo   repository.ReportRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	branchRepo repository.BranchRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	reportRepo repository.ReportRepository,
) *UseCase {
	return &UseCase{
		branchRepo:   branchRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		reportRepo:   reportRepo,
	}
}

// RevenueByBranch devuelve el dinero recolectado por cada sucursal en el
// rango [from, to]. Sucursales sin ventas aparecen con total cero.
func (uc *UseCase) RevenueByBranch(ctx context.Context, from, to time.Time) ([]dto.BranchRevenueReport, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.RevenueByBranch(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchRevenueReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.BranchRevenueReport{
			BranchID:   r.BranchID,
			BranchName: r.BranchName,
			Total:      r.Total,
		})
	}
	return out, nil
}

// SalesByCustomer devuelve las facturas de un cliente en el rango.
func (uc *UseCase) SalesByCustomer(ctx context.Context, customerID int64, from, to time.Time) ([]*dto.InvoiceResponse, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.CustomerNotFound(customerID)
	}
	invoices, err := uc.invoiceRepo.ListByCustomerInRange(customerID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
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
		out = append(out, resp)
	}
	return out, nil
}

// OccupancyIndex devuelve el índice de ocupación (usado / capacidad, por
// volumen y por peso) de las unidades de una sucursal, filtrado por clase
// si kind no es vacío.
func (uc *UseCase) OccupancyIndex(ctx context.Context, branchID int64, kind string) ([]dto.OccupancyReport, error) {
	if kind != "" && kind != entity.UnitKindWarehouse && kind != entity.UnitKindShelf {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.BranchNotFound(branchID)
	}
	rows, err := uc.reportRepo.OccupancyIndex(branchID, kind)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OccupancyReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.OccupancyReport{
			UnitID:        r.UnitID,
			ProductTypeID: r.ProductTypeID,
			Kind:          r.Kind,
			VolumeCap:     r.VolumeCap,
			VolumeUsed:    r.VolumeUsed,
			VolumeIndex:   ratio(r.VolumeUsed, r.VolumeCap),
			WeightCap:     r.WeightCap,
			WeightUsed:    r.WeightUsed,
			WeightIndex:   ratio(r.WeightUsed, r.WeightCap),
		})
	}
	return out, nil
}

func ratio(used, capacity decimal.Decimal) decimal.Decimal {
	if capacity.IsZero() {
		return decimal.Zero
	}
	return used.DivRound(capacity, 4)
}
