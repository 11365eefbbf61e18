package shop

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// ItemKind says what happens when an item is bought
type ItemKind string

const (
	KindBoost    ItemKind = "boost"
	KindSeedPack ItemKind = "seed_pack"
	KindCapacity ItemKind = "capacity"
	KindPremium  ItemKind = "premium"
)

// Currency is the balance an item is paid from
type Currency string

const (
	CurrencyCoins Currency = "coins"
	CurrencyGems  Currency = "gems"
)

// Item is one purchasable entry of the catalog
type Item struct {
	ID       string        `json:"id"`
	Kind     ItemKind      `json:"kind"`
	Price    int           `json:"price"`
	Currency Currency      `json:"currency"`
	Quantity int           `json:"quantity,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

var catalog = map[string]Item{
	domain.BoostIDGrowth:        {ID: domain.BoostIDGrowth, Kind: KindBoost, Price: 25, Currency: CurrencyCoins},
	domain.BoostIDCoin:          {ID: domain.BoostIDCoin, Kind: KindBoost, Price: 50, Currency: CurrencyCoins},
	domain.BoostIDMega:          {ID: domain.BoostIDMega, Kind: KindBoost, Price: 5, Currency: CurrencyGems},
	domain.BoostIDExperience:    {ID: domain.BoostIDExperience, Kind: KindBoost, Price: 3, Currency: CurrencyGems},
	domain.SeedPackRareFlowers:  {ID: domain.SeedPackRareFlowers, Kind: KindSeedPack, Price: 100, Currency: CurrencyCoins, Quantity: SeedPackSize},
	domain.SeedPackExoticFruits: {ID: domain.SeedPackExoticFruits, Kind: KindSeedPack, Price: 2, Currency: CurrencyGems, Quantity: SeedPackSize},
	domain.SeedPackMagicHerbs:   {ID: domain.SeedPackMagicHerbs, Kind: KindSeedPack, Price: 3, Currency: CurrencyGems, Quantity: SeedPackSize},
	ItemExtraField:              {ID: ItemExtraField, Kind: KindCapacity, Price: 500, Currency: CurrencyCoins},
	ItemPremium30d:              {ID: ItemPremium30d, Kind: KindPremium, Price: 0, Currency: CurrencyCoins, Duration: PremiumDuration},
}

// Lookup returns the catalog entry for an item id
func Lookup(id string) (Item, error) {
	item, ok := catalog[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", domain.ErrUnknownItem, id)
	}
	return item, nil
}

// Items returns the catalog sorted by id
func Items() []Item {
	items := make([]Item, 0, len(catalog))
	for _, item := range catalog {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
