package entity

// ProductType clasifica productos que comparten política de almacenamiento.
// Una sucursal "ofrece" un tipo si vende al menos un producto de ese tipo
// (derivado de los términos de venta, no se almacena aparte).
type ProductType struct {
	ID         int64
	Name       string
	CategoryID int64
}
