package leaderboard

import (
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// Board is the canonical bounded, ranked list of entries.
// It is not safe for concurrent use; the engine serializes access.
type Board struct {
	entries []domain.LeaderboardEntry
	views   *lru.Cache[domain.LeaderboardCategory, []domain.LeaderboardEntry]
}

// NewBoard creates an empty board
func NewBoard() *Board {
	// lru.New only fails for a non-positive size
	views, _ := lru.New[domain.LeaderboardCategory, []domain.LeaderboardEntry](viewCacheSize)
	return &Board{views: views}
}

// Submit upserts the player's entry and resorts the board
func (b *Board) Submit(p *domain.Player, now time.Time) {
	activity := now
	b.upsert(domain.LeaderboardEntry{
		PlayerID:     p.ID,
		PlayerName:   p.Name,
		Score:        Score(p),
		Level:        p.Level,
		LastActivity: &activity,
	})
	b.resort()
}

// Merge upserts several entries at once and resorts the board a single time
func (b *Board) Merge(entries []domain.LeaderboardEntry) {
	for _, e := range entries {
		b.upsert(e)
	}
	b.resort()
}

func (b *Board) upsert(e domain.LeaderboardEntry) {
	for i := range b.entries {
		if b.entries[i].PlayerID == e.PlayerID {
			b.entries[i] = e
			return
		}
	}
	b.entries = append(b.entries, e)
}

// resort orders entries by score descending, keeping insertion order among ties,
// then assigns ranks and drops everything past the size limit
func (b *Board) resort() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > domain.MaxLeaderboardEntries {
		b.entries = b.entries[:domain.MaxLeaderboardEntries]
	}
	for i := range b.entries {
		b.entries[i].Rank = i + 1
	}
	b.views.Purge()
}

// Rank returns the player's 1-based rank, or one past the last rank when absent
func (b *Board) Rank(playerID string) int {
	for _, e := range b.entries {
		if e.PlayerID == playerID {
			return e.Rank
		}
	}
	return len(b.entries) + 1
}

// Entry returns a copy of the player's entry
func (b *Board) Entry(playerID string) (domain.LeaderboardEntry, bool) {
	for _, e := range b.entries {
		if e.PlayerID == playerID {
			return cloneEntry(e), true
		}
	}
	return domain.LeaderboardEntry{}, false
}

// Rename updates the display name on a player's entry
func (b *Board) Rename(playerID, name string) bool {
	for i := range b.entries {
		if b.entries[i].PlayerID == playerID {
			b.entries[i].PlayerName = name
			b.views.Purge()
			return true
		}
	}
	return false
}

// Remove deletes a player's entry and reranks the rest
func (b *Board) Remove(playerID string) bool {
	for i := range b.entries {
		if b.entries[i].PlayerID == playerID {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			b.resort()
			return true
		}
	}
	return false
}

// Entries returns a copy of the canonical ordering
func (b *Board) Entries() []domain.LeaderboardEntry {
	return cloneEntries(b.entries)
}

// Len returns the number of entries
func (b *Board) Len() int {
	return len(b.entries)
}

// Restore replaces the board with previously saved entries.
// Ranks in the input are ignored and recomputed.
func (b *Board) Restore(entries []domain.LeaderboardEntry) {
	b.entries = b.entries[:0]
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.PlayerID == "" || seen[e.PlayerID] {
			continue
		}
		seen[e.PlayerID] = true
		b.entries = append(b.entries, cloneEntry(e))
	}
	b.resort()
}

// Clear removes every entry
func (b *Board) Clear() {
	b.entries = nil
	b.views.Purge()
}

// View returns the entries re-sorted for a category with ranks local to that view.
// The canonical ordering is not modified.
func (b *Board) View(category domain.LeaderboardCategory) []domain.LeaderboardEntry {
	if cached, ok := b.views.Get(category); ok {
		return cloneEntries(cached)
	}

	view := cloneEntries(b.entries)
	switch category {
	case domain.CategoryLevel:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Level > view[j].Level })
	case domain.CategoryDaily:
		sort.SliceStable(view, func(i, j int) bool { return dailyComposite(view[i]) > dailyComposite(view[j]) })
	case domain.CategoryScore:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Score > view[j].Score })
	}
	for i := range view {
		view[i].Rank = i + 1
	}

	b.views.Add(category, view)
	return cloneEntries(view)
}

func cloneEntry(e domain.LeaderboardEntry) domain.LeaderboardEntry {
	if e.LastActivity != nil {
		t := *e.LastActivity
		e.LastActivity = &t
	}
	return e
}

func cloneEntries(in []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, len(in))
	for i, e := range in {
		out[i] = cloneEntry(e)
	}
	return out
}
