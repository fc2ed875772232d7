package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// UseCase altas y consultas del catálogo: sucursales, proveedores,
// categorías, tipos de producto, productos y clientes. Son registros
// simples sin invariantes de concurrencia; cada alta valida la existencia
// de sus referencias y toma su id del secuenciador central.
type UseCase struct {
	seq          repository.Sequence
	branchRepo   repository.BranchRepository
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
	typeRepo     repository.ProductTypeRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	seq repository.Sequence,
	branchRepo repository.BranchRepository,
	supplierRepo repository.SupplierRepository,
	categoryRepo repository.CategoryRepository,
	typeRepo repository.ProductTypeRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *UseCase {
	return &UseCase{
		seq:          seq,
		branchRepo:   branchRepo,
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
		typeRepo:     typeRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// CreateBranch registra una sucursal.
func (uc *UseCase) CreateBranch(ctx context.Context, in dto.CreateBranchRequest) (*entity.Branch, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.City) == "" {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.seq.NextID()
	if err != nil {
		return nil, err
	}
	branch := &entity.Branch{ID: id, City: in.City, Address: in.Address, Name: in.Name}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// ListBranches devuelve todas las sucursales.
func (uc *UseCase) ListBranches(ctx context.Context) ([]*entity.Branch, error) {
	return uc.branchRepo.List()
}

// CreateSupplier registra un proveedor. El NIT es único.
func (uc *UseCase) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if in.NIT <= 0 || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.seq.NextID()
	if err != nil {
		return nil, err
	}
	supplier := &entity.Supplier{ID: id, NIT: in.NIT, Name: in.Name}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// ListSuppliers devuelve todos los proveedores.
func (uc *UseCase) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List()
}

// AddSupplierProduct registra que un proveedor provee un producto a un
// precio de lista.
func (uc *UseCase) AddSupplierProduct(ctx context.Context, in dto.SupplierProductRequest) error {
	if in.ListPrice.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.SupplierNotFound(in.SupplierID)
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ProductNotFound(in.ProductID)
	}
	return uc.supplierRepo.AddProduct(&entity.SupplierProduct{
		SupplierID: in.SupplierID,
		ProductID:  in.ProductID,
		ListPrice:  in.ListPrice,
	})
}

// CreateCategory registra una categoría.
func (uc *UseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*entity.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.seq.NextID()
	if err != nil {
		return nil, err
	}
	category := &entity.Category{ID: id, Name: in.Name}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories devuelve todas las categorías.
func (uc *UseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

// CreateProductType registra un tipo de producto dentro de una categoría.
func (uc *UseCase) CreateProductType(ctx context.Context, in dto.CreateProductTypeRequest) (*entity.ProductType, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.CategoryNotFound(in.CategoryID)
	}
	id, err := uc.seq.NextID()
	if err != nil {
		return nil, err
	}
	productType := &entity.ProductType{ID: id, Name: in.Name, CategoryID: in.CategoryID}
	if err := uc.typeRepo.Create(productType); err != nil {
		return nil, err
	}
	return productType, nil
}

// ListProductTypes devuelve todos los tipos de producto.
func (uc *UseCase) ListProductTypes(ctx context.Context) ([]*entity.ProductType, error) {
	return uc.typeRepo.List()
}

// CreateProduct registra un producto del catálogo. La huella física
// (volumen y peso por unidad empacada) debe ser estrictamente positiva;
// de ella dependen todos los cálculos de capacidad.
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" ||
		!in.PackageVolume.GreaterThan(decimal.Zero) ||
		!in.PackageWeight.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	productType, err := uc.typeRepo.GetByID(in.TypeID)
	if err != nil {
		return nil, err
	}
	if productType == nil {
		return nil, domain.ProductTypeNotFound(in.TypeID)
	}
	id, err := uc.seq.NextID()
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:            id,
		Name:          in.Name,
		Brand:         in.Brand,
		TypeID:        in.TypeID,
		Presentation:  in.Presentation,
		PresentQty:    in.PresentQty,
		UnitMeasure:   in.UnitMeasure,
		PackageVolume: in.PackageVolume,
		PackageWeight: in.PackageWeight,
		Barcode:       in.Barcode,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts devuelve todos los productos.
func (uc *UseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List()
}

// CreateCustomer registra un cliente. Las empresas requieren dirección.
func (uc *UseCase) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Kind != entity.CustomerKindNatural && in.Kind != entity.CustomerKindCompany {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind == entity.CustomerKindCompany && strings.TrimSpace(in.Address) == "" {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.seq.NextID()
	if err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		ID:      id,
		Kind:    in.Kind,
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
