package storage_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/superandes-api/internal/application/storage"
	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory de StorageRepository
// ──────────────────────────────────────────────────────────────────────────────

type occKey struct{ unitID, productID int64 }

type fakeStorageRepo struct {
	units    map[int64]*entity.StorageUnit
	products map[int64]*entity.Product
	occs     map[occKey]*entity.Occupancy
}

func newFakeStorageRepo() *fakeStorageRepo {
	return &fakeStorageRepo{
		units:    map[int64]*entity.StorageUnit{},
		products: map[int64]*entity.Product{},
		occs:     map[occKey]*entity.Occupancy{},
	}
}

func (f *fakeStorageRepo) addUnit(u *entity.StorageUnit)   { f.units[u.ID] = u }
func (f *fakeStorageRepo) addProduct(p *entity.Product)    { f.products[p.ID] = p }
func (f *fakeStorageRepo) setOcc(o *entity.Occupancy)      { f.occs[occKey{o.UnitID, o.ProductID}] = o }
func (f *fakeStorageRepo) CreateUnit(u *entity.StorageUnit) error { f.addUnit(u); return nil }

func (f *fakeStorageRepo) GetUnit(id int64) (*entity.StorageUnit, error) {
	return f.units[id], nil
}

func (f *fakeStorageRepo) UnitsFor(branchID, typeID int64, kind string) ([]*entity.StorageUnit, error) {
	var out []*entity.StorageUnit
	var maxID int64
	for id := range f.units {
		if id > maxID {
			maxID = id
		}
	}
	for id := int64(0); id <= maxID; id++ {
		u, ok := f.units[id]
		if !ok {
			continue
		}
		if u.BranchID == branchID && u.ProductTypeID == typeID && (kind == "" || u.Kind == kind) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStorageRepo) Capacity(branchID, typeID int64, kind string) (repository.CapacityTotals, error) {
	var t repository.CapacityTotals
	for _, u := range f.units {
		if u.BranchID == branchID && u.ProductTypeID == typeID && (kind == "" || u.Kind == kind) {
			t.Volume = t.Volume.Add(u.CapacityVolume)
			t.Weight = t.Weight.Add(u.CapacityWeight)
		}
	}
	return t, nil
}

func (f *fakeStorageRepo) Occupied(branchID, typeID int64, kind string) (repository.CapacityTotals, error) {
	var t repository.CapacityTotals
	for k, o := range f.occs {
		u := f.units[k.unitID]
		if u == nil || u.BranchID != branchID || u.ProductTypeID != typeID {
			continue
		}
		if kind != "" && u.Kind != kind {
			continue
		}
		p := f.products[k.productID]
		t.Volume = t.Volume.Add(o.Quantity.Mul(p.PackageVolume))
		t.Weight = t.Weight.Add(o.Quantity.Mul(p.PackageWeight))
	}
	return t, nil
}

func (f *fakeStorageRepo) UnitOccupied(unitID int64) (repository.CapacityTotals, error) {
	var t repository.CapacityTotals
	for k, o := range f.occs {
		if k.unitID != unitID {
			continue
		}
		p := f.products[k.productID]
		t.Volume = t.Volume.Add(o.Quantity.Mul(p.PackageVolume))
		t.Weight = t.Weight.Add(o.Quantity.Mul(p.PackageWeight))
	}
	return t, nil
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
	var ids []int64
	for k := range f.occs {
		u := f.units[k.unitID]
		if u == nil || u.BranchID != branchID || u.Kind != entity.UnitKindShelf || k.productID != productID {
			continue
		}
		ids = append(ids, k.unitID)
	}
	// orden por unidad, como el repo real
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[j] < ids[i] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}
	for _, id := range ids {
		out = append(out, f.occs[occKey{id, productID}])
	}
	return out, nil
}

func (f *fakeStorageRepo) UpsertOccupancy(occ *entity.Occupancy) error {
	f.setOcc(occ)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID: 10, Name: "Arroz Diana 500g", TypeID: 5,
		PackageVolume: dec("2"), PackageWeight: dec("0.5"),
	}
}

func warehouseUnit(id int64, vol, weight string) *entity.StorageUnit {
	return &entity.StorageUnit{
		ID: id, BranchID: 1, ProductTypeID: 5, Kind: entity.UnitKindWarehouse,
		CapacityVolume: dec(vol), CapacityWeight: dec(weight),
	}
}

func shelfUnit(id int64, vol, weight string) *entity.StorageUnit {
	level := int64(5)
	return &entity.StorageUnit{
		ID: id, BranchID: 1, ProductTypeID: 5, Kind: entity.UnitKindShelf,
		CapacityVolume: dec(vol), CapacityWeight: dec(weight), RestockLevel: &level,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustOccupancy
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustOccupancy_AumentoDentroDeCapacidad(t *testing.T) {
	repo := newFakeStorageRepo()
	product := testProduct()
	unit := warehouseUnit(100, "100", "100")
	repo.addProduct(product)
	repo.addUnit(unit)

	err := storage.AdjustOccupancy(repo, unit, product, dec("10"), time.Now())
	require.NoError(t, err)

	occ, _ := repo.GetOccupancyForUpdate(100, 10)
	assert.True(t, occ.Quantity.Equal(dec("10")), "la ocupación debe quedar en 10")
}

func TestAdjustOccupancy_ExcedeVolumen(t *testing.T) {
	repo := newFakeStorageRepo()
	product := testProduct() // 2 de volumen por unidad
	unit := warehouseUnit(100, "10", "100")
	repo.addProduct(product)
	repo.addUnit(unit)

	// 6 unidades × 2 vol = 12 > capacidad 10
	err := storage.AdjustOccupancy(repo, unit, product, dec("6"), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	assert.Equal(t, domain.KindCapacityExceeded, domain.KindOf(err))

	occ, _ := repo.GetOccupancyForUpdate(100, 10)
	assert.True(t, occ.Quantity.IsZero(), "un rechazo no debe dejar escrituras parciales")
}

func TestAdjustOccupancy_ExcedePeso(t *testing.T) {
	repo := newFakeStorageRepo()
	product := testProduct() // 0.5 de peso por unidad
	unit := warehouseUnit(100, "1000", "2")
	repo.addProduct(product)
	repo.addUnit(unit)

	// 5 unidades × 0.5 = 2.5 > capacidad 2
	err := storage.AdjustOccupancy(repo, unit, product, dec("5"), time.Now())
	require.Error(t, err)
	assert.Equal(t, domain.KindCapacityExceeded, domain.KindOf(err))
}

func TestAdjustOccupancy_DisminucionBajoCero(t *testing.T) {
	repo := newFakeStorageRepo()
	product := testProduct()
	unit := warehouseUnit(100, "100", "100")
	repo.addProduct(product)
	repo.addUnit(unit)
	repo.setOcc(&entity.Occupancy{UnitID: 100, ProductID: 10, Quantity: dec("3")})

	err := storage.AdjustOccupancy(repo, unit, product, dec("-4"), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	assert.Equal(t, domain.KindNegativeStock, domain.KindOf(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// DeductFromShelves
// ──────────────────────────────────────────────────────────────────────────────

func TestDeductFromShelves_ExistenciasInsuficientes(t *testing.T) {
	repo := newFakeStorageRepo()
	product := testProduct()
	repo.addProduct(product)
	repo.addUnit(shelfUnit(200, "100", "100"))
	repo.setOcc(&entity.Occupancy{UnitID: 200, ProductID: 10, Quantity: dec("20")})

	err := storage.DeductFromShelves(repo, 1, product, dec("25"), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.Equal(t, domain.KindInsufficientStock, domain.KindOf(err))

	// El stock no debe cambiar tras el rechazo
	onShelf, _ := repo.QuantityOnHand(1, 10, entity.UnitKindShelf)
	assert.True(t, onShelf.Equal(dec("20")), "el rechazo no debe descontar nada")
}

func TestDeductFromShelves_DescuentoVorazEntreEstantes(t *testing.T) {
	repo := newFakeStorageRepo()
	product := testProduct()
	repo.addProduct(product)
	repo.addUnit(shelfUnit(200, "100", "100"))
	repo.addUnit(shelfUnit(201, "100", "100"))
	repo.setOcc(&entity.Occupancy{UnitID: 200, ProductID: 10, Quantity: dec("8")})
	repo.setOcc(&entity.Occupancy{UnitID: 201, ProductID: 10, Quantity: dec("12")})

	err := storage.DeductFromShelves(repo, 1, product, dec("15"), time.Now())
	require.NoError(t, err)

	occ200, _ := repo.GetOccupancyForUpdate(200, 10)
	occ201, _ := repo.GetOccupancyForUpdate(201, 10)
	assert.True(t, occ200.Quantity.IsZero(), "el primer estante se vacía")
	assert.True(t, occ201.Quantity.Equal(dec("5")), "el segundo estante queda con el resto")
}

func TestDeductFromShelves_IgnoraBodegas(t *testing.T) {
	repo := newFakeStorageRepo()
	product := testProduct()
	repo.addProduct(product)
	repo.addUnit(warehouseUnit(100, "100", "100"))
	repo.addUnit(shelfUnit(200, "100", "100"))
	repo.setOcc(&entity.Occupancy{UnitID: 100, ProductID: 10, Quantity: dec("50")})
	repo.setOcc(&entity.Occupancy{UnitID: 200, ProductID: 10, Quantity: dec("5")})

	// Solo hay 5 en estante; lo de bodega no cuenta para la venta
	err := storage.DeductFromShelves(repo, 1, product, dec("6"), time.Now())
	require.Error(t, err)
	assert.Equal(t, domain.KindInsufficientStock, domain.KindOf(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Secuencias aleatorias de operaciones
// ──────────────────────────────────────────────────────────────────────────────

// Tras cada operación del ledger, aceptada o rechazada, toda unidad debe
// respetar su capacidad en ambas dimensiones y ninguna ocupación puede
// quedar negativa.
func TestLedger_SecuenciaAleatoriaMantieneInvariantes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	repo := newFakeStorageRepo()
	product := testProduct()
	repo.addProduct(product)

	units := []*entity.StorageUnit{
		warehouseUnit(100, "60", "40"),
		warehouseUnit(101, "30", "100"),
		shelfUnit(200, "50", "50"),
		shelfUnit(201, "20", "8"),
	}
	for _, u := range units {
		repo.addUnit(u)
	}

	checkInvariants := func(step int) {
		for _, u := range units {
			used, err := repo.UnitOccupied(u.ID)
			require.NoError(t, err)
			assert.False(t, used.Volume.GreaterThan(u.CapacityVolume),
				"paso %d: unidad %d excede su volumen (%s > %s)",
				step, u.ID, used.Volume, u.CapacityVolume)
			assert.False(t, used.Weight.GreaterThan(u.CapacityWeight),
				"paso %d: unidad %d excede su peso (%s > %s)",
				step, u.ID, used.Weight, u.CapacityWeight)
		}
		for k, occ := range repo.occs {
			assert.False(t, occ.Quantity.LessThan(decimal.Zero),
				"paso %d: ocupación negativa en unidad %d", step, k.unitID)
		}
	}

	now := time.Now()
	for step := 0; step < 500; step++ {
		switch rng.Intn(3) {
		case 0:
			// Aumento o disminución directa sobre una unidad cualquiera
			unit := units[rng.Intn(len(units))]
			delta := decimal.NewFromInt(int64(rng.Intn(21) - 10))
			if delta.IsZero() {
				continue
			}
			err := storage.AdjustOccupancy(repo, unit, product, delta, now)
			if err != nil {
				assert.True(t,
					domain.KindOf(err) == domain.KindCapacityExceeded ||
						domain.KindOf(err) == domain.KindNegativeStock,
					"paso %d: rechazo inesperado: %v", step, err)
			}
		case 1:
			// Venta de una cantidad aleatoria desde los estantes
			qty := decimal.NewFromInt(int64(rng.Intn(10) + 1))
			err := storage.DeductFromShelves(repo, 1, product, qty, now)
			if err != nil {
				assert.Equal(t, domain.KindInsufficientStock, domain.KindOf(err),
					"paso %d: rechazo inesperado: %v", step, err)
			}
		case 2:
			// Llegada: intentar almacenar en la primera unidad con espacio
			qty := decimal.NewFromInt(int64(rng.Intn(8) + 1))
			for _, unit := range units {
				free, err := storage.FreeCapacity(repo, unit)
				require.NoError(t, err)
				if free.Volume.GreaterThanOrEqual(qty.Mul(product.PackageVolume)) &&
					free.Weight.GreaterThanOrEqual(qty.Mul(product.PackageWeight)) {
					require.NoError(t, storage.AdjustOccupancy(repo, unit, product, qty, now),
						"paso %d: una unidad con espacio libre no debe rechazar", step)
					break
				}
			}
		}
		checkInvariants(step)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// FreeCapacity
// ──────────────────────────────────────────────────────────────────────────────

func TestFreeCapacity_DescuentaOcupacion(t *testing.T) {
	repo := newFakeStorageRepo()
	product := testProduct()
	unit := warehouseUnit(100, "100", "50")
	repo.addProduct(product)
	repo.addUnit(unit)
	repo.setOcc(&entity.Occupancy{UnitID: 100, ProductID: 10, Quantity: dec("10")})

	free, err := storage.FreeCapacity(repo, unit)
	require.NoError(t, err)
	// 10 × 2 vol = 20 ocupado; 10 × 0.5 peso = 5 ocupado
	assert.True(t, free.Volume.Equal(dec("80")), "volumen libre = 100 - 20")
	assert.True(t, free.Weight.Equal(dec("45")), "peso libre = 50 - 5")
}
