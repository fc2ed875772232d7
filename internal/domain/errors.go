package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Categorías de error del dominio; se comparan con errors.Is.
// Cada rechazo concreto es un *Error con Kind y campos estructurados,
// cuyo Unwrap devuelve una de estas categorías.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrPreconditionFailed = errors.New("precondición no cumplida")
	ErrInvariantViolation = errors.New("invariante violada")
	ErrTransientFailure   = errors.New("fallo transitorio, seguro reintentar")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
)

// Kind identifica el motivo exacto de un rechazo del motor.
type Kind string

const (
	KindBranchNotFound        Kind = "BRANCH_NOT_FOUND"
	KindCategoryNotFound      Kind = "CATEGORY_NOT_FOUND"
	KindProductNotFound       Kind = "PRODUCT_NOT_FOUND"
	KindProductTypeNotFound   Kind = "PRODUCT_TYPE_NOT_FOUND"
	KindSupplierNotFound      Kind = "SUPPLIER_NOT_FOUND"
	KindCustomerNotFound      Kind = "CUSTOMER_NOT_FOUND"
	KindOrderNotFound         Kind = "ORDER_NOT_FOUND"
	KindSalesTermNotFound     Kind = "SALES_TERM_NOT_FOUND"
	KindStorageUnitNotFound   Kind = "STORAGE_UNIT_NOT_FOUND"
	KindInvoiceNotFound       Kind = "INVOICE_NOT_FOUND"
	KindNotSold               Kind = "NOT_SOLD"
	KindSupplierMismatch      Kind = "SUPPLIER_MISMATCH"
	KindAboveReorderLevel     Kind = "ABOVE_REORDER_LEVEL"
	KindInsufficientCapacity  Kind = "INSUFFICIENT_CAPACITY"
	KindInsufficientStock     Kind = "INSUFFICIENT_STOCK"
	KindProductTypeNotOffered Kind = "PRODUCT_TYPE_NOT_OFFERED"
	KindCapacityExceeded      Kind = "CAPACITY_EXCEEDED"
	KindNegativeStock         Kind = "NEGATIVE_STOCK"
	KindTransientFailure      Kind = "TRANSIENT_FAILURE"
)

// Error es un error de dominio con campos estructurados: ids, umbrales y
// valores observados, en lugar de prosa libre. Los campos decimales solo
// son significativos para los Kind que los mencionan.
type Error struct {
	Kind     Kind
	category error

	BranchID      int64
	ProductID     int64
	ProductTypeID int64
	CategoryID    int64
	SupplierID    int64
	CustomerID    int64
	OrderID       int64
	UnitID        int64
	InvoiceID     int64

	Observed  decimal.Decimal // cantidad/valor observado
	Threshold decimal.Decimal // umbral contra el que se comparó
	Required  decimal.Decimal // lo que la operación necesitaba
	Available decimal.Decimal // lo que había disponible

	cause error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	switch e.Kind {
	case KindAboveReorderLevel:
		msg += fmt.Sprintf(": sucursal %d producto %d: existencias %s > nivel de reorden %s",
			e.BranchID, e.ProductID, e.Observed, e.Threshold)
	case KindInsufficientCapacity:
		msg += fmt.Sprintf(": sucursal %d tipo %d: requerido %s, disponible %s",
			e.BranchID, e.ProductTypeID, e.Required, e.Available)
	case KindInsufficientStock:
		msg += fmt.Sprintf(": sucursal %d producto %d: solicitado %s, en estantes %s",
			e.BranchID, e.ProductID, e.Required, e.Available)
	case KindCapacityExceeded:
		msg += fmt.Sprintf(": unidad %d producto %d: resultado %s excede capacidad %s",
			e.UnitID, e.ProductID, e.Observed, e.Threshold)
	case KindNegativeStock:
		msg += fmt.Sprintf(": unidad %d producto %d: cantidad resultante %s",
			e.UnitID, e.ProductID, e.Observed)
	case KindNotSold:
		msg += fmt.Sprintf(": sucursal %d no vende el producto %d", e.BranchID, e.ProductID)
	case KindSupplierMismatch:
		msg += fmt.Sprintf(": proveedor %d no provee el producto %d", e.SupplierID, e.ProductID)
	case KindProductTypeNotOffered:
		msg += fmt.Sprintf(": sucursal %d no ofrece el tipo de producto %d", e.BranchID, e.ProductTypeID)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap devuelve la categoría, de modo que errors.Is(err, domain.ErrNotFound)
// y similares funcionen sobre cualquier *Error.
func (e *Error) Unwrap() error {
	if e.cause != nil {
		return errors.Join(e.category, e.cause)
	}
	return e.category
}

// KindOf extrae el Kind de un error de dominio, o "" si no lo es.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// ── Constructores NotFound ────────────────────────────────────────────────────

func BranchNotFound(id int64) *Error {
	return &Error{Kind: KindBranchNotFound, category: ErrNotFound, BranchID: id}
}

func ProductNotFound(id int64) *Error {
	return &Error{Kind: KindProductNotFound, category: ErrNotFound, ProductID: id}
}

func CategoryNotFound(id int64) *Error {
	return &Error{Kind: KindCategoryNotFound, category: ErrNotFound, CategoryID: id}
}

func ProductTypeNotFound(id int64) *Error {
	return &Error{Kind: KindProductTypeNotFound, category: ErrNotFound, ProductTypeID: id}
}

func SupplierNotFound(id int64) *Error {
	return &Error{Kind: KindSupplierNotFound, category: ErrNotFound, SupplierID: id}
}

func CustomerNotFound(id int64) *Error {
	return &Error{Kind: KindCustomerNotFound, category: ErrNotFound, CustomerID: id}
}

func OrderNotFound(id int64) *Error {
	return &Error{Kind: KindOrderNotFound, category: ErrNotFound, OrderID: id}
}

func SalesTermNotFound(branchID, productID int64) *Error {
	return &Error{Kind: KindSalesTermNotFound, category: ErrNotFound, BranchID: branchID, ProductID: productID}
}

func StorageUnitNotFound(id int64) *Error {
	return &Error{Kind: KindStorageUnitNotFound, category: ErrNotFound, UnitID: id}
}

func InvoiceNotFound(id int64) *Error {
	return &Error{Kind: KindInvoiceNotFound, category: ErrNotFound, InvoiceID: id}
}

// ── Constructores PreconditionFailed ──────────────────────────────────────────

func NotSold(branchID, productID int64) *Error {
	return &Error{Kind: KindNotSold, category: ErrPreconditionFailed, BranchID: branchID, ProductID: productID}
}

func SupplierMismatch(supplierID, productID int64) *Error {
	return &Error{Kind: KindSupplierMismatch, category: ErrPreconditionFailed, SupplierID: supplierID, ProductID: productID}
}

func AboveReorderLevel(branchID, productID int64, onHand, level decimal.Decimal) *Error {
	return &Error{
		Kind: KindAboveReorderLevel, category: ErrPreconditionFailed,
		BranchID: branchID, ProductID: productID, Observed: onHand, Threshold: level,
	}
}

func InsufficientCapacity(branchID, typeID int64, required, available decimal.Decimal) *Error {
	return &Error{
		Kind: KindInsufficientCapacity, category: ErrPreconditionFailed,
		BranchID: branchID, ProductTypeID: typeID, Required: required, Available: available,
	}
}

func InsufficientStock(branchID, productID int64, requested, onShelf decimal.Decimal) *Error {
	return &Error{
		Kind: KindInsufficientStock, category: ErrPreconditionFailed,
		BranchID: branchID, ProductID: productID, Required: requested, Available: onShelf,
	}
}

func ProductTypeNotOffered(branchID, typeID int64) *Error {
	return &Error{Kind: KindProductTypeNotOffered, category: ErrPreconditionFailed, BranchID: branchID, ProductTypeID: typeID}
}

// ── Constructores InvariantViolation ──────────────────────────────────────────
// Solo afloran si una escritura dejaría una ocupación fuera de rango.

func CapacityExceeded(unitID, productID int64, resulting, capacity decimal.Decimal) *Error {
	return &Error{
		Kind: KindCapacityExceeded, category: ErrInvariantViolation,
		UnitID: unitID, ProductID: productID, Observed: resulting, Threshold: capacity,
	}
}

func NegativeStock(unitID, productID int64, resulting decimal.Decimal) *Error {
	return &Error{
		Kind: KindNegativeStock, category: ErrInvariantViolation,
		UnitID: unitID, ProductID: productID, Observed: resulting,
	}
}

// TransientFailure envuelve un conflicto de serialización o deadlock de la
// base de datos; el caller puede reintentar con backoff.
func TransientFailure(cause error) *Error {
	return &Error{Kind: KindTransientFailure, category: ErrTransientFailure, cause: cause}
}
