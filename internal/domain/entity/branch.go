package entity

// Branch representa una sucursal física de la cadena.
// Inmutable después de su creación para efectos del motor de inventario.
type Branch struct {
	ID      int64
	City    string
	Address string
	Name    string
}
