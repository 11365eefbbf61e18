package cooldown

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Tracker records when each action was last used and enforces its cooldown
type Tracker struct {
	mu       sync.Mutex
	config   Config
	lastUsed map[string]time.Time
}

// NewTracker creates an empty tracker
func NewTracker(config Config) *Tracker {
	return &Tracker{
		config:   config,
		lastUsed: make(map[string]time.Time),
	}
}

// CheckCooldown reports whether action is on cooldown at now and how long remains
func (t *Tracker) CheckCooldown(action string, now time.Time) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.check(action, now)
}

func (t *Tracker) check(action string, now time.Time) (bool, time.Duration) {
	if t.config.DevMode {
		return false, 0
	}
	last, ok := t.lastUsed[action]
	if !ok {
		return false, 0
	}
	remaining := last.Add(t.config.GetCooldownDuration(action)).Sub(now)
	if remaining <= 0 {
		return false, 0
	}
	return true, remaining
}

// EnforceCooldown runs fn only when action is off cooldown, and starts the
// cooldown only when fn succeeds
func (t *Tracker) EnforceCooldown(action string, now time.Time, fn func() error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if onCooldown, remaining := t.check(action, now); onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	if t.config.DevMode {
		slog.Debug(LogMsgDevModeBypass, "action", action)
	}
	if err := fn(); err != nil {
		return err
	}
	t.lastUsed[action] = now
	return nil
}

// ResetCooldown clears a cooldown
func (t *Tracker) ResetCooldown(action string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.lastUsed, action)
}

// GetLastUsed returns when action was last performed
func (t *Tracker) GetLastUsed(action string) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	last, ok := t.lastUsed[action]
	return last, ok
}

// Active returns the actions still cooling down at now, sorted
func (t *Tracker) Active(now time.Time) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	actions := make([]string, 0, len(t.lastUsed))
	for action := range t.lastUsed {
		if onCooldown, _ := t.check(action, now); onCooldown {
			actions = append(actions, action)
		}
	}
	sort.Strings(actions)
	return actions
}

// Clear forgets every cooldown
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastUsed = make(map[string]time.Time)
}

// Snapshot returns last-used times as RFC 3339 strings, omitting expired entries
func (t *Tracker) Snapshot(now time.Time) map[string]string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]string, len(t.lastUsed))
	for action, last := range t.lastUsed {
		if onCooldown, _ := t.check(action, now); onCooldown || t.config.DevMode {
			out[action] = last.UTC().Format(time.RFC3339Nano)
		}
	}
	return out
}

// Restore replaces the tracker contents with a snapshot and returns how many
// entries were kept
func (t *Tracker) Restore(snapshot map[string]string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastUsed = make(map[string]time.Time, len(snapshot))
	for action, raw := range snapshot {
		last, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			slog.Warn(LogMsgDroppedEntry, "action", action, "error", err)
			continue
		}
		t.lastUsed[action] = last
	}
	return len(t.lastUsed)
}
