package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// BranchRevenueRow es el resultado de la consulta de dinero recolectado
// por sucursal en un rango de fechas.
type BranchRevenueRow struct {
	BranchID   int64
	BranchName string
	Total      decimal.Decimal
}

// OccupancyIndexRow es el índice de ocupación de una unidad de
// almacenamiento: capacidad contra uso, por volumen y por peso.
type OccupancyIndexRow struct {
	UnitID        int64
	ProductTypeID int64
	Kind          string
	VolumeCap     decimal.Decimal
	VolumeUsed    decimal.Decimal
	WeightCap     decimal.Decimal
	WeightUsed    decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre el mismo estado del
// motor; corren sin bloqueos de sucursal pero sobre un snapshot
// transaccionalmente consistente.
type ReportRepository interface {
	RevenueByBranch(from, to time.Time) ([]BranchRevenueRow, error)
	OccupancyIndex(branchID int64, kind string) ([]OccupancyIndexRow, error)
}
