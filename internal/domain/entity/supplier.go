package entity

import "github.com/shopspring/decimal"

// Supplier representa un proveedor registrado.
type Supplier struct {
	ID   int64
	NIT  int64
	Name string
}

// SupplierProduct es la relación Provee: qué producto puede suministrar
// un proveedor y a qué precio de lista.
type SupplierProduct struct {
	SupplierID int64
	ProductID  int64
	ListPrice  decimal.Decimal
}
