package engine

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/logger"
	"github.com/osse101/DailyGarden_Go/internal/metrics"
	"github.com/osse101/DailyGarden_Go/internal/reward"
	"github.com/osse101/DailyGarden_Go/internal/shop"
)

// Plant buys a seed of type t and plants it with the boosts currently running
func (e *Engine) Plant(ctx context.Context, t domain.PlantType) (*domain.Plant, error) {
	var planted *domain.Plant
	err := e.commit(ctx, "plant", func(now time.Time) ([]published, error) {
		plant, err := e.garden.Plant(e.player, e.field, t, now, e.ledger.Inherit(now))
		if err != nil {
			return nil, err
		}
		planted = plant.Clone()
		metrics.PlantsPlanted.WithLabelValues(string(t)).Inc()
		metrics.CoinsSpent.Add(float64(e.garden.SeedCost(t)))
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgPlanted, "plant_id", planted.ID, "type", planted.Type, "boosts", len(planted.Boosts))
	return planted, nil
}

// Harvest collects a ready plant
func (e *Engine) Harvest(ctx context.Context, plantID string) (domain.HarvestResult, error) {
	var result domain.HarvestResult
	err := e.commit(ctx, "harvest", func(now time.Time) ([]published, error) {
		res, err := e.garden.Harvest(e.player, e.field, plantID, now)
		if err != nil {
			return nil, err
		}
		result = res
		return e.harvestEventsLocked([]domain.HarvestResult{res}), nil
	})
	if err != nil {
		return domain.HarvestResult{}, err
	}
	logHarvest(ctx, result)
	return result, nil
}

// HarvestAllReady collects every ready plant in garden order. An empty result is not an error.
func (e *Engine) HarvestAllReady(ctx context.Context) ([]domain.HarvestResult, error) {
	var results []domain.HarvestResult
	err := e.commit(ctx, "harvest_all", func(now time.Time) ([]published, error) {
		results = e.garden.HarvestAllReady(e.player, e.field, now)
		return e.harvestEventsLocked(results), nil
	})
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		logHarvest(ctx, res)
	}
	return results, nil
}

// harvestEventsLocked records harvest metrics and returns a level-up event when
// the harvests raised the level. Callers hold e.mu.
func (e *Engine) harvestEventsLocked(results []domain.HarvestResult) []published {
	var first, last *domain.LevelUp
	bonus := 0
	for i := range results {
		res := results[i]
		metrics.PlantsHarvested.WithLabelValues(string(res.Type)).Inc()
		metrics.CoinsEarned.WithLabelValues(metrics.SourceHarvest).Add(float64(res.Coins))
		if res.LevelUp != nil {
			if first == nil {
				first = res.LevelUp
			}
			last = res.LevelUp
			bonus += res.LevelUp.BonusCoins
		}
	}
	if first == nil {
		return nil
	}
	metrics.CoinsEarned.WithLabelValues(metrics.SourceLevelUp).Add(float64(bonus))
	return []published{{
		Type: domain.EventTypeLevelUp,
		Payload: domain.LevelUpPayload{
			PlayerID:   e.player.ID,
			OldLevel:   first.OldLevel,
			NewLevel:   last.NewLevel,
			BonusCoins: bonus,
		},
	}}
}

func logHarvest(ctx context.Context, res domain.HarvestResult) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgHarvested, "plant_id", res.PlantID, "type", res.Type, "coins", res.Coins, "experience", res.Experience)
	if res.LevelUp != nil {
		log.Info(LogMsgLevelUp, "old_level", res.LevelUp.OldLevel, "new_level", res.LevelUp.NewLevel, "bonus", res.LevelUp.BonusCoins)
	}
}

// ClaimDailyReward credits today's login reward once per calendar day
func (e *Engine) ClaimDailyReward(ctx context.Context) (domain.DailyReward, error) {
	var claimed domain.DailyReward
	err := e.commit(ctx, "claim_daily", func(now time.Time) ([]published, error) {
		r, err := reward.ClaimDaily(e.player, now, e.loc)
		if err != nil {
			return nil, err
		}
		claimed = r
		metrics.DailyRewardsClaimed.Inc()
		metrics.CoinsEarned.WithLabelValues(metrics.SourceDaily).Add(float64(r.Coins))
		return nil, nil
	})
	if err != nil {
		return domain.DailyReward{}, err
	}
	logger.FromContext(ctx).Info(LogMsgDailyClaimed, "day", claimed.Day, "coins", claimed.Coins, "gems", claimed.Gems)
	return claimed, nil
}

// ApplyPurchasedBoost starts boost id: it is recorded in the ledger for future
// seeds and stamped onto every plant already in the garden
func (e *Engine) ApplyPurchasedBoost(ctx context.Context, id string) (boost.Definition, error) {
	var def boost.Definition
	err := e.commit(ctx, "apply_boost", func(now time.Time) ([]published, error) {
		d, err := e.applyBoostLocked(id, now)
		def = d
		return nil, err
	})
	if err != nil {
		return boost.Definition{}, err
	}
	logger.FromContext(ctx).Info(LogMsgBoostApplied, "boost", id, "duration", def.Duration)
	return def, nil
}

func (e *Engine) applyBoostLocked(id string, now time.Time) (boost.Definition, error) {
	def, err := e.ledger.Apply(id, now)
	if err != nil {
		return boost.Definition{}, err
	}
	e.garden.StampBoost(e.field, def)
	metrics.BoostsApplied.WithLabelValues(id).Inc()
	return def, nil
}

// AddGardenCapacity adds one plot and returns the new capacity
func (e *Engine) AddGardenCapacity(ctx context.Context) (int, error) {
	var capacity int
	err := e.commit(ctx, "add_capacity", func(time.Time) ([]published, error) {
		if err := e.garden.AddCapacity(e.field); err != nil {
			return nil, err
		}
		capacity = e.field.MaxPlants
		return nil, nil
	})
	return capacity, err
}

// AddPremiumSeeds credits qty seeds of a pack and returns the new count
func (e *Engine) AddPremiumSeeds(ctx context.Context, pack string, qty int) (int, error) {
	var count int
	err := e.commit(ctx, "add_seeds", func(time.Time) ([]published, error) {
		if err := e.seeds.Add(pack, qty); err != nil {
			return nil, err
		}
		count = e.seeds.Count(pack)
		return nil, nil
	})
	return count, err
}

// UsePremiumSeed consumes one seed of a pack and returns how many remain
func (e *Engine) UsePremiumSeed(ctx context.Context, pack string) (int, error) {
	var count int
	err := e.commit(ctx, "use_seed", func(time.Time) ([]published, error) {
		if err := e.seeds.Use(pack); err != nil {
			return nil, err
		}
		count = e.seeds.Count(pack)
		return nil, nil
	})
	return count, err
}

// PlantPremiumSeed plants the crop of a seed pack without a coin cost.
// The seed is only consumed when the plant fits in the garden.
func (e *Engine) PlantPremiumSeed(ctx context.Context, pack string) (*domain.Plant, error) {
	var planted *domain.Plant
	err := e.commit(ctx, "plant_premium", func(now time.Time) ([]published, error) {
		t, err := domain.SeedPackPlantType(pack)
		if err != nil {
			return nil, err
		}
		if e.seeds.Count(pack) <= 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoPremiumSeeds, pack)
		}
		plant, err := e.garden.PlantPaid(e.field, t, now, e.ledger.Inherit(now))
		if err != nil {
			return nil, err
		}
		if err := e.seeds.Use(pack); err != nil {
			return nil, err
		}
		planted = plant.Clone()
		metrics.PlantsPlanted.WithLabelValues(string(t)).Inc()
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgPlanted, "plant_id", planted.ID, "type", planted.Type, "seed_pack", pack)
	return planted, nil
}

// Purchase buys a shop item and delivers it. Nothing is debited when delivery fails.
func (e *Engine) Purchase(ctx context.Context, itemID string) (shop.Item, error) {
	var bought shop.Item
	err := e.commit(ctx, "purchase", func(now time.Time) ([]published, error) {
		item, err := e.shop.Purchase(ctx, e.player, itemID, now, func(item shop.Item) error {
			return e.fulfillLocked(item, now)
		})
		if err != nil {
			return nil, err
		}
		bought = item
		metrics.Purchases.WithLabelValues(item.ID).Inc()
		switch item.Currency {
		case shop.CurrencyGems:
			metrics.GemsSpent.Add(float64(item.Price))
		case shop.CurrencyCoins:
			metrics.CoinsSpent.Add(float64(item.Price))
		}
		return nil, nil
	})
	return bought, err
}

func (e *Engine) fulfillLocked(item shop.Item, now time.Time) error {
	switch item.Kind {
	case shop.KindBoost:
		_, err := e.applyBoostLocked(item.ID, now)
		return err
	case shop.KindSeedPack:
		return e.seeds.Add(item.ID, item.Quantity)
	case shop.KindCapacity:
		return e.garden.AddCapacity(e.field)
	case shop.KindPremium:
		shop.ExtendPremium(e.player, now, item.Duration)
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownItem, item.ID)
}

// RenamePlayer sets a new display name, also shown on the leaderboard
func (e *Engine) RenamePlayer(ctx context.Context, name string) (string, error) {
	clean, err := NormalizeName(name)
	if err != nil {
		return "", err
	}
	err = e.commit(ctx, "rename", func(time.Time) ([]published, error) {
		e.player.Name = clean
		e.board.Rename(e.player.ID, clean)
		return nil, nil
	})
	if err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info(LogMsgPlayerRenamed, "name", clean)
	return clean, nil
}

// NormalizeName trims and NFC-normalizes a display name and checks its length
func NormalizeName(name string) (string, error) {
	clean := norm.NFC.String(strings.TrimSpace(name))
	n := utf8.RuneCountInString(clean)
	if n == 0 || n > domain.MaxPlayerNameLength {
		return "", fmt.Errorf("%w: must be 1 to %d characters", domain.ErrInvalidName, domain.MaxPlayerNameLength)
	}
	for _, r := range clean {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: contains control characters", domain.ErrInvalidName)
		}
	}
	return clean, nil
}
