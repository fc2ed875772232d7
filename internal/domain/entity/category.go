package entity

// Category agrupa tipos de producto.
type Category struct {
	ID   int64
	Name string
}
