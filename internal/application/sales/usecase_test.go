package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/application/sales"
	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
	"github.com/jhoicas/superandes-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory
// ──────────────────────────────────────────────────────────────────────────────

type fakeBranchRepo struct{ branches map[int64]*entity.Branch }

func (f *fakeBranchRepo) Create(b *entity.Branch) error { f.branches[b.ID] = b; return nil }
func (f *fakeBranchRepo) GetByID(id int64) (*entity.Branch, error) {
	return f.branches[id], nil
}
func (f *fakeBranchRepo) List() ([]*entity.Branch, error) { return nil, nil }

type fakeCustomerRepo struct{ customers map[int64]*entity.Customer }

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	return f.customers[id], nil
}

type fakeProductRepo struct{ products map[int64]*entity.Product }

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }

type fakeTermRepo struct{ terms map[[2]int64]*entity.SalesTerm }

func (f *fakeTermRepo) Upsert(t *entity.SalesTerm) error {
	f.terms[[2]int64{t.BranchID, t.ProductID}] = t
	return nil
}
func (f *fakeTermRepo) Get(branchID, productID int64) (*entity.SalesTerm, error) {
	return f.terms[[2]int64{branchID, productID}], nil
}
func (f *fakeTermRepo) GetForUpdate(branchID, productID int64) (*entity.SalesTerm, error) {
	return f.terms[[2]int64{branchID, productID}], nil
}
func (f *fakeTermRepo) TypeOffered(branchID, typeID int64) (bool, error) { return true, nil }

type fakeInvoiceRepo struct {
	invoices map[int64]*entity.Invoice
	lines    []*entity.InvoiceLine
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error { f.invoices[inv.ID] = inv; return nil }
func (f *fakeInvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	f.lines = append(f.lines, line)
	return nil
}
func (f *fakeInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	return f.invoices[id], nil
}
func (f *fakeInvoiceRepo) ListByCustomerInRange(customerID int64, from, to time.Time) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.invoices {
		if inv.CustomerID == customerID && !inv.Date.Before(from) && !inv.Date.After(to) {
			out = append(out, inv)
		}
	}
	return out, nil
}

type occKey struct{ unitID, productID int64 }

// fakeStorageRepo implementa solo lo que la venta toca: ocupaciones de
// estante y los agregados de existencias.
type fakeStorageRepo struct {
	units    map[int64]*entity.StorageUnit
	products map[int64]*entity.Product
	occs     map[occKey]*entity.Occupancy
}

func (f *fakeStorageRepo) CreateUnit(u *entity.StorageUnit) error { f.units[u.ID] = u; return nil }
func (f *fakeStorageRepo) GetUnit(id int64) (*entity.StorageUnit, error) {
	return f.units[id], nil
}
func (f *fakeStorageRepo) UnitsFor(branchID, typeID int64, kind string) ([]*entity.StorageUnit, error) {
	return nil, nil
}
func (f *fakeStorageRepo) Capacity(branchID, typeID int64, kind string) (repository.CapacityTotals, error) {
	return repository.CapacityTotals{}, nil
}
func (f *fakeStorageRepo) Occupied(branchID, typeID int64, kind string) (repository.CapacityTotals, error) {
	return repository.CapacityTotals{}, nil
}
func (f *fakeStorageRepo) UnitOccupied(unitID int64) (repository.CapacityTotals, error) {
	return repository.CapacityTotals{}, nil
}
func (f *fakeStorageRepo) QuantityOnHand(branchID, productID int64, kind string) (decimal.Decimal, error) {
	total := decimal.Zero
	for k, o := range f.occs {
		u := f.units[k.unitID]
		if u == nil || u.BranchID != branchID || k.productID != productID {
			continue
		}
		if kind != "" && u.Kind != kind {
			continue
		}
		total = total.Add(o.Quantity)
	}
	return total, nil
}
func (f *fakeStorageRepo) GetOccupancyForUpdate(unitID, productID int64) (*entity.Occupancy, error) {
	if o, ok := f.occs[occKey{unitID, productID}]; ok {
		return o, nil
	}
	return &entity.Occupancy{UnitID: unitID, ProductID: productID, Quantity: decimal.Zero}, nil
}
func (f *fakeStorageRepo) ShelfOccupanciesForUpdate(branchID, productID int64) ([]*entity.Occupancy, error) {
	var out []*entity.Occupancy
	for id := int64(0); id <= 1000; id++ {
		u, ok := f.units[id]
		if !ok || u.BranchID != branchID || u.Kind != entity.UnitKindShelf {
			continue
		}
		if o, ok := f.occs[occKey{id, productID}]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeStorageRepo) UpsertOccupancy(occ *entity.Occupancy) error {
	f.occs[occKey{occ.UnitID, occ.ProductID}] = occ
	return nil
}

type fakeSequence struct{ next int64 }

func (f *fakeSequence) NextID() (int64, error) { f.next++; return f.next, nil }

type fakeTxRunner struct {
	termRepo    *fakeTermRepo
	productRepo *fakeProductRepo
	storageRepo *fakeStorageRepo
	invoiceRepo *fakeInvoiceRepo
	seq         *fakeSequence
}

func (f *fakeTxRunner) RunSale(ctx context.Context, fn func(
	termRepo repository.SalesTermRepository,
	productRepo repository.ProductRepository,
	storageRepo repository.StorageRepository,
	invoiceRepo repository.InvoiceRepository,
	seq repository.Sequence,
) error) error {
	return fn(f.termRepo, f.productRepo, f.storageRepo, f.invoiceRepo, f.seq)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: sucursal 1 vende el producto 10 a 2500; 20 unidades en estante
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *sales.UseCase
	terms    *fakeTermRepo
	storage  *fakeStorageRepo
	invoices *fakeInvoiceRepo
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newFixture() *fixture {
	product := &entity.Product{
		ID: 10, Name: "Arroz Diana 500g", TypeID: 5,
		PackageVolume: dec("2"), PackageWeight: dec("0.5"),
	}
	branches := &fakeBranchRepo{branches: map[int64]*entity.Branch{
		1: {ID: 1, Name: "Superandes Chapinero"},
	}}
	customers := &fakeCustomerRepo{customers: map[int64]*entity.Customer{
		7: {ID: 7, Name: "Carlos Pérez", Kind: entity.CustomerKindNatural},
	}}
	products := &fakeProductRepo{products: map[int64]*entity.Product{10: product}}
	terms := &fakeTermRepo{terms: map[[2]int64]*entity.SalesTerm{
		{1, 10}: {BranchID: 1, ProductID: 10, Price: dec("2500"), ReorderLevel: dec("10"), RestockQty: dec("50")},
	}}
	invoices := &fakeInvoiceRepo{invoices: map[int64]*entity.Invoice{}}
	storageRepo := &fakeStorageRepo{
		units: map[int64]*entity.StorageUnit{
			200: {ID: 200, BranchID: 1, ProductTypeID: 5, Kind: entity.UnitKindShelf,
				CapacityVolume: dec("100"), CapacityWeight: dec("100")},
		},
		products: map[int64]*entity.Product{10: product},
		occs: map[occKey]*entity.Occupancy{
			{200, 10}: {UnitID: 200, ProductID: 10, Quantity: dec("20")},
		},
	}
	runner := &fakeTxRunner{
		termRepo: terms, productRepo: products, storageRepo: storageRepo,
		invoiceRepo: invoices, seq: &fakeSequence{next: 1000},
	}
	uc := sales.NewUseCase(runner, customers, branches, products, terms, logger.NewNop())
	return &fixture{uc: uc, terms: terms, storage: storageRepo, invoices: invoices}
}

func sellReq(qty string) dto.SellRequest {
	return dto.SellRequest{BranchID: 1, ProductID: 10, CustomerID: 7, Quantity: dec(qty)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sell
// ──────────────────────────────────────────────────────────────────────────────

func TestSell_Exitosa(t *testing.T) {
	fx := newFixture()

	inv, err := fx.uc.Sell(context.Background(), sellReq("5"))
	require.NoError(t, err)
	require.NotNil(t, inv)

	// Total = 5 × 2500 al precio vigente del término
	assert.True(t, inv.Total.Equal(dec("12500")), "el total debe ser cantidad × precio del término")
	require.Len(t, inv.Lines, 1)
	assert.True(t, inv.Lines[0].UnitPrice.Equal(dec("2500")), "la línea congela el precio unitario")
	assert.True(t, inv.Lines[0].Quantity.Equal(dec("5")))

	onShelf, _ := fx.storage.QuantityOnHand(1, 10, entity.UnitKindShelf)
	assert.True(t, onShelf.Equal(dec("15")), "el estante queda con 20 - 5 = 15")

	persisted, _ := fx.invoices.GetByID(inv.ID)
	require.NotNil(t, persisted, "la factura debe quedar persistida")
	require.Len(t, fx.invoices.lines, 1, "la línea debe quedar persistida")
}

func TestSell_ExistenciasInsuficientes(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.Sell(context.Background(), sellReq("25"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.Equal(t, domain.KindInsufficientStock, domain.KindOf(err))

	onShelf, _ := fx.storage.QuantityOnHand(1, 10, entity.UnitKindShelf)
	assert.True(t, onShelf.Equal(dec("20")), "el rechazo no debe descontar existencias")
	assert.Empty(t, fx.invoices.invoices, "no debe emitirse factura")
}

func TestSell_ProductoNoVendidoEnSucursal(t *testing.T) {
	fx := newFixture()
	delete(fx.terms.terms, [2]int64{1, 10})

	_, err := fx.uc.Sell(context.Background(), sellReq("1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.Equal(t, domain.KindNotSold, domain.KindOf(err))
}

func TestSell_ClienteInexistente(t *testing.T) {
	fx := newFixture()
	req := sellReq("1")
	req.CustomerID = 999

	_, err := fx.uc.Sell(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.KindCustomerNotFound, domain.KindOf(err))
}

func TestSell_CantidadInvalida(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.Sell(context.Background(), sellReq("0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterSalesTerm / TermsFor
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSalesTerm_UpsertIdempotente(t *testing.T) {
	fx := newFixture()
	req := dto.RegisterSalesTermRequest{
		BranchID: 1, ProductID: 10,
		Price: dec("2800"), ReorderLevel: dec("12"), RestockQty: dec("60"),
	}

	require.NoError(t, fx.uc.RegisterSalesTerm(context.Background(), req))
	require.NoError(t, fx.uc.RegisterSalesTerm(context.Background(), req),
		"registrar dos veces los mismos términos no debe fallar")

	term, err := fx.uc.TermsFor(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.True(t, term.Price.Equal(dec("2800")), "el upsert debe dejar el último precio")
	assert.True(t, term.RestockQty.Equal(dec("60")))
}

func TestRegisterSalesTerm_RecompraInvalida(t *testing.T) {
	fx := newFixture()
	req := dto.RegisterSalesTermRequest{
		BranchID: 1, ProductID: 10,
		Price: dec("2800"), ReorderLevel: dec("12"), RestockQty: decimal.Zero,
	}

	err := fx.uc.RegisterSalesTerm(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTermsFor_NoRegistrado(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.TermsFor(context.Background(), 1, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.KindSalesTermNotFound, domain.KindOf(err))
}
