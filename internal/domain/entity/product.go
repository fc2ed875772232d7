package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. PackageVolume y PackageWeight
// son la huella física por unidad empacada; de ahí se derivan todos los
// cálculos de ocupación del Storage Ledger.
type Product struct {
	ID            int64
	Name          string
	Brand         string
	TypeID        int64
	Presentation  string
	PresentQty    decimal.Decimal // cantidad por presentación (ej. 6 unidades)
	UnitMeasure   string
	PackageVolume decimal.Decimal
	PackageWeight decimal.Decimal
	Barcode       string
}
