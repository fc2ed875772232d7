package dto

import "github.com/shopspring/decimal"

// CreateStorageUnitRequest alta de una bodega o estante.
type CreateStorageUnitRequest struct {
	BranchID       int64           `json:"branch_id"`
	ProductTypeID  int64           `json:"product_type_id"`
	Kind           string          `json:"kind"` // BODEGA | ESTANTE
	CapacityVolume decimal.Decimal `json:"capacity_volume"`
	CapacityWeight decimal.Decimal `json:"capacity_weight"`
	RestockLevel   *int64          `json:"restock_level,omitempty"` // solo estantes
}

// CapacityResponse capacidad u ocupación agregada de una sucursal/tipo.
type CapacityResponse struct {
	BranchID      int64           `json:"branch_id"`
	ProductTypeID int64           `json:"product_type_id"`
	Kind          string          `json:"kind,omitempty"`
	Volume        decimal.Decimal `json:"volume"`
	Weight        decimal.Decimal `json:"weight"`
}

// QuantityOnHandResponse existencias de un producto en una sucursal.
type QuantityOnHandResponse struct {
	BranchID  int64           `json:"branch_id"`
	ProductID int64           `json:"product_id"`
	Kind      string          `json:"kind,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
}
