package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/superandes-api/internal/application/catalog"
	"github.com/jhoicas/superandes-api/internal/application/dto"
)

// CatalogHandler maneja las altas y consultas del catálogo.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateBranch POST /api/branches
func (h *CatalogHandler) CreateBranch(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBranch(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBranches GET /api/branches
func (h *CatalogHandler) ListBranches(c *fiber.Ctx) error {
	out, err := h.uc.ListBranches(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateSupplier POST /api/suppliers
func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSupplier(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSuppliers GET /api/suppliers
func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.uc.ListSuppliers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddSupplierProduct POST /api/suppliers/:id/products
func (h *CatalogHandler) AddSupplierProduct(c *fiber.Ctx) error {
	supplierID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.SupplierProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.SupplierID = int64(supplierID)
	if err := h.uc.AddSupplierProduct(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCategory POST /api/categories
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCategory(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories GET /api/categories
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateProductType POST /api/product-types
func (h *CatalogHandler) CreateProductType(c *fiber.Ctx) error {
	var in dto.CreateProductTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateProductType(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProductTypes GET /api/product-types
func (h *CatalogHandler) ListProductTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListProductTypes(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateProduct POST /api/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateProduct(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProducts GET /api/products
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateCustomer POST /api/customers
func (h *CatalogHandler) CreateCustomer(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCustomer(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
