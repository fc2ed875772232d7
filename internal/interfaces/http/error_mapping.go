package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/domain"
)

// respondError traduce un error de dominio a la respuesta HTTP: categoría
// -> status, Kind -> code, y los campos estructurados del error -> details.
//
//	NotFound            -> 404
//	InvalidInput        -> 400
//	Unauthorized        -> 401
//	PreconditionFailed  -> 409
//	Duplicate           -> 409
//	TransientFailure    -> 503 (reintentable)
//	InvariantViolation  -> 500
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrPreconditionFailed), errors.Is(err, domain.ErrDuplicate):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrTransientFailure):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvariantViolation):
		status = fiber.StatusInternalServerError
	}

	resp := dto.ErrorResponse{Code: errorCode(err), Message: err.Error()}
	var de *domain.Error
	if errors.As(err, &de) {
		resp.Details = errorDetails(de)
	}
	return c.Status(status).JSON(resp)
}

func errorCode(err error) string {
	if kind := domain.KindOf(err); kind != "" {
		return string(kind)
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, domain.ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, domain.ErrDuplicate):
		return "DUPLICATE"
	case errors.Is(err, domain.ErrPreconditionFailed):
		return "PRECONDITION_FAILED"
	case errors.Is(err, domain.ErrTransientFailure):
		return "TRANSIENT_FAILURE"
	}
	return "INTERNAL"
}

func errorDetails(de *domain.Error) map[string]any {
	d := map[string]any{}
	if de.BranchID != 0 {
		d["branch_id"] = de.BranchID
	}
	if de.ProductID != 0 {
		d["product_id"] = de.ProductID
	}
	if de.ProductTypeID != 0 {
		d["product_type_id"] = de.ProductTypeID
	}
	if de.CategoryID != 0 {
		d["category_id"] = de.CategoryID
	}
	if de.SupplierID != 0 {
		d["supplier_id"] = de.SupplierID
	}
	if de.CustomerID != 0 {
		d["customer_id"] = de.CustomerID
	}
	if de.OrderID != 0 {
		d["order_id"] = de.OrderID
	}
	if de.UnitID != 0 {
		d["unit_id"] = de.UnitID
	}
	if de.InvoiceID != 0 {
		d["invoice_id"] = de.InvoiceID
	}
	if !de.Observed.IsZero() {
		d["observed"] = de.Observed.String()
	}
	if !de.Threshold.IsZero() {
		d["threshold"] = de.Threshold.String()
	}
	if !de.Required.IsZero() {
		d["required"] = de.Required.String()
	}
	if !de.Available.IsZero() {
		d["available"] = de.Available.String()
	}
	if len(d) == 0 {
		return nil
	}
	return d
}
