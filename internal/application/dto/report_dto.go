package dto

import "github.com/shopspring/decimal"

// BranchRevenueReport dinero recolectado por una sucursal en el rango.
type BranchRevenueReport struct {
	BranchID   int64           `json:"branch_id"`
	BranchName string          `json:"branch_name"`
	Total      decimal.Decimal `json:"total"`
}

// OccupancyReport índice de ocupación de una unidad de almacenamiento.
// Los índices son fracciones 0..1 (usado / capacidad).
type OccupancyReport struct {
	UnitID        int64           `json:"unit_id"`
	ProductTypeID int64           `json:"product_type_id"`
	Kind          string          `json:"kind"`
	VolumeCap     decimal.Decimal `json:"volume_cap"`
	VolumeUsed    decimal.Decimal `json:"volume_used"`
	VolumeIndex   decimal.Decimal `json:"volume_index"`
	WeightCap     decimal.Decimal `json:"weight_cap"`
	WeightUsed    decimal.Decimal `json:"weight_used"`
	WeightIndex   decimal.Decimal `json:"weight_index"`
}
