package boost

import (
	"math"
	"sort"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// Ledger tracks purchased boosts by id with their absolute expiry.
// It decides what newly planted seeds inherit; per-plant copies decay on their own.
type Ledger struct {
	expiries map[string]time.Time
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{expiries: make(map[string]time.Time)}
}

// Apply records a purchase of id at now. A repeat purchase resets the expiry
// instead of extending it.
func (l *Ledger) Apply(id string, now time.Time) (Definition, error) {
	def, err := Lookup(id)
	if err != nil {
		return Definition{}, err
	}
	l.expiries[id] = now.Add(def.Duration)
	return def, nil
}

// Expiry returns the recorded expiry for id
func (l *Ledger) Expiry(id string) (time.Time, bool) {
	exp, ok := l.expiries[id]
	return exp, ok
}

// Remaining returns whole seconds left on id at now, or zero if inactive
func (l *Ledger) Remaining(id string, now time.Time) time.Duration {
	exp, ok := l.expiries[id]
	if !ok {
		return 0
	}
	secs := math.Floor(exp.Sub(now).Seconds())
	if secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// ActiveIDs returns the ids still running at now, sorted
func (l *Ledger) ActiveIDs(now time.Time) []string {
	ids := make([]string, 0, len(l.expiries))
	for id, exp := range l.expiries {
		if exp.After(now) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Inherit returns boost copies for a seed planted at now. Each copy lasts only
// as long as its ledger entry has left.
func (l *Ledger) Inherit(now time.Time) []domain.Boost {
	var out []domain.Boost
	for _, id := range l.ActiveIDs(now) {
		remaining := l.Remaining(id, now)
		if remaining <= 0 {
			continue
		}
		def, err := Lookup(id)
		if err != nil {
			continue
		}
		out = append(out, Stamp(def, remaining)...)
	}
	return out
}

// Prune drops entries that expired at or before now and returns how many were dropped
func (l *Ledger) Prune(now time.Time) int {
	n := 0
	for id, exp := range l.expiries {
		if !exp.After(now) {
			delete(l.expiries, id)
			n++
		}
	}
	return n
}

// Len returns the number of recorded entries, expired or not
func (l *Ledger) Len() int {
	return len(l.expiries)
}

// Snapshot serializes the ledger as id to RFC 3339 expiry
func (l *Ledger) Snapshot() map[string]string {
	out := make(map[string]string, len(l.expiries))
	for id, exp := range l.expiries {
		out[id] = exp.UTC().Format(time.RFC3339Nano)
	}
	return out
}

// Restore replaces the ledger contents from a snapshot. Entries that already
// expired, have unknown ids, or fail to parse are discarded; their count is returned.
func (l *Ledger) Restore(snapshot map[string]string, now time.Time) int {
	l.expiries = make(map[string]time.Time, len(snapshot))
	discarded := 0
	for id, raw := range snapshot {
		exp, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil || !exp.After(now) {
			discarded++
			continue
		}
		if _, err := Lookup(id); err != nil {
			discarded++
			continue
		}
		l.expiries[id] = exp
	}
	return discarded
}
