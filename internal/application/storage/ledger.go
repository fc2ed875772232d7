package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

// AdjustOccupancy aplica un delta a la ocupación de un producto en una
// unidad, dentro de la transacción del caller (el repo debe venir atado a
// la tx). En aumentos verifica que el volumen y peso resultantes no superen
// la capacidad de la unidad; en disminuciones, que la cantidad no quede
// negativa. La fila de ocupación queda bloqueada (SELECT FOR UPDATE) hasta
// el commit.
func AdjustOccupancy(
	repo repository.StorageRepository,
	unit *entity.StorageUnit,
	product *entity.Product,
	delta decimal.Decimal,
	now time.Time,
) error {
	occ, err := repo.GetOccupancyForUpdate(unit.ID, product.ID)
	if err != nil {
		return err
	}
	newQty := occ.Quantity.Add(delta)

	if delta.GreaterThan(decimal.Zero) {
		used, err := repo.UnitOccupied(unit.ID)
		if err != nil {
			return err
		}
		newVol := used.Volume.Add(delta.Mul(product.PackageVolume))
		if newVol.GreaterThan(unit.CapacityVolume) {
			return domain.CapacityExceeded(unit.ID, product.ID, newVol, unit.CapacityVolume)
		}
		newWeight := used.Weight.Add(delta.Mul(product.PackageWeight))
		if newWeight.GreaterThan(unit.CapacityWeight) {
			return domain.CapacityExceeded(unit.ID, product.ID, newWeight, unit.CapacityWeight)
		}
	} else if newQty.LessThan(decimal.Zero) {
		return domain.NegativeStock(unit.ID, product.ID, newQty)
	}

	occ.Quantity = newQty
	occ.UpdatedAt = now
	return repo.UpsertOccupancy(occ)
}

// DeductFromShelves descuenta qty del producto en los estantes de la
// sucursal, dentro de la transacción del caller. Bloquea las filas de
// ocupación implicadas, verifica existencias suficientes y reparte el
// descuento de forma voraz en orden de unidad. Las existencias nunca
// quedan negativas.
func DeductFromShelves(
	repo repository.StorageRepository,
	branchID int64,
	product *entity.Product,
	qty decimal.Decimal,
	now time.Time,
) error {
	occs, err := repo.ShelfOccupanciesForUpdate(branchID, product.ID)
	if err != nil {
		return err
	}
	onShelf := decimal.Zero
	for _, occ := range occs {
		onShelf = onShelf.Add(occ.Quantity)
	}
	if onShelf.LessThan(qty) {
		return domain.InsufficientStock(branchID, product.ID, qty, onShelf)
	}

	remaining := qty
	for _, occ := range occs {
		if !remaining.GreaterThan(decimal.Zero) {
			break
		}
		take := decimal.Min(occ.Quantity, remaining)
		if take.IsZero() {
			continue
		}
		newQty := occ.Quantity.Sub(take)
		if newQty.LessThan(decimal.Zero) {
			return domain.NegativeStock(occ.UnitID, product.ID, newQty)
		}
		occ.Quantity = newQty
		occ.UpdatedAt = now
		if err := repo.UpsertOccupancy(occ); err != nil {
			return err
		}
		remaining = remaining.Sub(take)
	}
	return nil
}

// FreeCapacity calcula el espacio libre de una unidad en ambas dimensiones.
func FreeCapacity(repo repository.StorageRepository, unit *entity.StorageUnit) (repository.CapacityTotals, error) {
	used, err := repo.UnitOccupied(unit.ID)
	if err != nil {
		return repository.CapacityTotals{}, err
	}
	return repository.CapacityTotals{
		Volume: unit.CapacityVolume.Sub(used.Volume),
		Weight: unit.CapacityWeight.Sub(used.Weight),
	}, nil
}
