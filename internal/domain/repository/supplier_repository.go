package repository

import "github.com/jhoicas/superandes-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores y la relación
// Provee (proveedor suministra producto).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	AddProduct(link *entity.SupplierProduct) error
	// Supplies responde si el proveedor está registrado como capaz de
	// suministrar el producto.
	Supplies(supplierID, productID int64) (bool, error)
}
