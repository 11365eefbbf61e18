package offline

import (
	"math"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/clock"
	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/growth"
)

// Reconciler grants what accrued while the engine was not running
type Reconciler struct {
	growth *growth.Engine
	loc    *time.Location
}

// NewReconciler creates a reconciler. Calendar days for the login streak are
// counted in loc; nil means time.Local.
func NewReconciler(growthEngine *growth.Engine, loc *time.Location) *Reconciler {
	if loc == nil {
		loc = time.Local
	}
	return &Reconciler{growth: growthEngine, loc: loc}
}

// Reconcile catches the player and garden up to now and stamps now as the last login.
// Running it twice at the same instant changes nothing the second time.
func (r *Reconciler) Reconcile(p *domain.Player, g *domain.Garden, now time.Time) domain.OfflineReport {
	elapsed := now.Sub(p.LastLoginDate)
	if elapsed < 0 {
		elapsed = 0
	}
	report := domain.OfflineReport{ElapsedSeconds: elapsed.Seconds()}

	if p.IsPremium && !p.PremiumActive(now) {
		p.IsPremium = false
		p.PremiumExpiry = nil
		report.PremiumLapsed = true
	}
	premium := p.IsPremium

	growthWindow := minDuration(elapsed, r.growthCap(premium))
	report.GrowthSeconds = growthWindow.Seconds()
	for _, plant := range g.Plants {
		if r.growth.AdvanceFlat(plant, growthWindow) {
			report.PlantsReadied++
		}
		// per-plant boosts run on wall-clock time like the ledger's expiries
		plant.Boosts = boost.Decay(plant.Boosts, elapsed)
	}

	report.BonusCoins = r.passiveIncome(elapsed, g.Productivity, premium)
	p.Coins += report.BonusCoins

	switch days := clock.DaysBetween(p.LastLoginDate, now, r.loc); {
	case days == 1:
		p.ConsecutiveLoginDays++
	case days > 1:
		p.ConsecutiveLoginDays = 1
	}
	if p.ConsecutiveLoginDays < 1 {
		p.ConsecutiveLoginDays = 1
	}
	report.ConsecutiveLoginDays = p.ConsecutiveLoginDays

	p.LastLoginDate = now
	return report
}

func (r *Reconciler) growthCap(premium bool) time.Duration {
	if premium {
		return PremiumGrowthCap
	}
	return FreeGrowthCap
}

func (r *Reconciler) passiveIncome(elapsed time.Duration, productivity float64, premium bool) int {
	hours := elapsed.Hours()
	if hours <= MinIncomeHours {
		return 0
	}
	limit := FreeIncomeCapHours
	if premium {
		limit = PremiumIncomeCapHours
	}
	return int(math.Floor(math.Min(hours, limit) * productivity * CoinsPerProductiveHour))
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
