package garden

import (
	"fmt"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// SeedInventory counts premium seeds by seed pack id
type SeedInventory map[string]int

// Add credits qty seeds of a pack
func (s SeedInventory) Add(pack string, qty int) error {
	if _, err := domain.SeedPackPlantType(pack); err != nil {
		return err
	}
	if qty <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, qty)
	}
	s[pack] += qty
	return nil
}

// Use consumes one seed of a pack
func (s SeedInventory) Use(pack string) error {
	if _, err := domain.SeedPackPlantType(pack); err != nil {
		return err
	}
	if s[pack] <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrNoPremiumSeeds, pack)
	}
	s[pack]--
	if s[pack] == 0 {
		delete(s, pack)
	}
	return nil
}

// Count returns how many seeds of a pack remain
func (s SeedInventory) Count(pack string) int {
	return s[pack]
}

// Clone returns a copy of the inventory
func (s SeedInventory) Clone() SeedInventory {
	out := make(SeedInventory, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
