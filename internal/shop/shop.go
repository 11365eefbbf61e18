package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/cooldown"
	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/logger"
)

// Fulfiller delivers a paid item. It runs before the price is debited,
// so a failed delivery leaves the player's balance untouched.
type Fulfiller func(item Item) error

// Shop validates prices and boost cooldowns for simulated purchases
type Shop struct {
	cooldowns *cooldown.Tracker
}

// New creates a shop whose boost purchases are limited by cooldowns
func New(cooldowns *cooldown.Tracker) *Shop {
	return &Shop{cooldowns: cooldowns}
}

// Cooldowns exposes the boost cooldown tracker
func (s *Shop) Cooldowns() *cooldown.Tracker {
	return s.cooldowns
}

// CanAfford reports whether the player's balance covers the item
func CanAfford(p *domain.Player, item Item) bool {
	switch item.Currency {
	case CurrencyGems:
		return p.Gems >= item.Price
	default:
		return p.Coins >= item.Price
	}
}

func debit(p *domain.Player, item Item) {
	switch item.Currency {
	case CurrencyGems:
		p.Gems -= item.Price
	default:
		p.Coins -= item.Price
	}
}

// Purchase buys itemID for the player: checks funds and cooldowns, runs fulfill,
// then debits the price
func (s *Shop) Purchase(ctx context.Context, p *domain.Player, itemID string, now time.Time, fulfill Fulfiller) (Item, error) {
	log := logger.FromContext(ctx)

	item, err := Lookup(itemID)
	if err != nil {
		return Item{}, err
	}
	if !CanAfford(p, item) {
		log.Info(LogMsgPurchaseRejected, "item", itemID, "reason", domain.ErrMsgInsufficientFunds)
		return Item{}, fmt.Errorf("%w: %s costs %d %s", domain.ErrInsufficientFunds, itemID, item.Price, item.Currency)
	}

	deliver := func() error {
		if err := fulfill(item); err != nil {
			return err
		}
		debit(p, item)
		return nil
	}

	if item.Kind == KindBoost {
		err = s.cooldowns.EnforceCooldown(item.ID, now, deliver)
	} else {
		err = deliver()
	}
	if err != nil {
		var cdErr cooldown.ErrOnCooldown
		if errors.As(err, &cdErr) {
			log.Info(LogMsgPurchaseRejected, "item", itemID, "remaining", cdErr.Remaining)
			return Item{}, fmt.Errorf("%w: %w", domain.ErrBoostOnCooldown, cdErr)
		}
		return Item{}, err
	}

	log.Info(LogMsgPurchaseCompleted, "item", itemID, "price", item.Price, "currency", item.Currency)
	return item, nil
}

// ExtendPremium grants premium for d, extending an active subscription.
// Premium without an expiry is left alone.
func ExtendPremium(p *domain.Player, now time.Time, d time.Duration) {
	if p.PremiumActive(now) && p.PremiumExpiry == nil {
		return
	}
	start := now
	if p.PremiumActive(now) {
		start = *p.PremiumExpiry
	}
	expiry := start.Add(d)
	p.IsPremium = true
	p.PremiumExpiry = &expiry
}
