package dto

import "github.com/shopspring/decimal"

// CreateBranchRequest registro de una sucursal.
type CreateBranchRequest struct {
	City    string `json:"city"`
	Address string `json:"address"`
	Name    string `json:"name"`
}

// CreateSupplierRequest registro de un proveedor.
type CreateSupplierRequest struct {
	NIT  int64  `json:"nit"`
	Name string `json:"name"`
}

// SupplierProductRequest registra que un proveedor provee un producto.
type SupplierProductRequest struct {
	SupplierID int64           `json:"supplier_id"`
	ProductID  int64           `json:"product_id"`
	ListPrice  decimal.Decimal `json:"list_price"`
}

// CreateCategoryRequest registro de una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreateProductTypeRequest registro de un tipo de producto.
type CreateProductTypeRequest struct {
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
}

// CreateProductRequest registro de un producto.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	TypeID        int64           `json:"type_id"`
	Presentation  string          `json:"presentation"`
	PresentQty    decimal.Decimal `json:"present_qty"`
	UnitMeasure   string          `json:"unit_measure"`
	PackageVolume decimal.Decimal `json:"package_volume"`
	PackageWeight decimal.Decimal `json:"package_weight"`
	Barcode       string          `json:"barcode"`
}

// CreateCustomerRequest registro de un cliente.
type CreateCustomerRequest struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
