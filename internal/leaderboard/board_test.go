package leaderboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/testing/leaktest"
)

var testNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func entry(id string, score, level int) domain.LeaderboardEntry {
	return domain.LeaderboardEntry{PlayerID: id, PlayerName: id, Score: score, Level: level}
}

// playerWithScore builds a level-1 player whose score is exactly coins/10
func playerWithScore(id string, score int) *domain.Player {
	p := domain.NewPlayer(id, id, testNow)
	p.Gems = 0
	p.Coins = score * CoinsPerPoint
	return p
}

func assertContiguous(t *testing.T, entries []domain.LeaderboardEntry) {
	t.Helper()
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank, "rank at index %d", i)
		if i > 0 {
			assert.GreaterOrEqual(t, entries[i-1].Score, e.Score, "order at index %d", i)
		}
	}
}

func TestScoreOf(t *testing.T) {
	tests := []struct {
		name                          string
		level, coins, gems, loginDays int
		want                          int
	}{
		{"fresh player", 1, 100, 10, 1, 110},
		{"coins floor", 1, 109, 0, 1, 10},
		{"level and streak", 3, 0, 0, 4, 260},
		{"clamps bad inputs", 0, -5, -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreOf(tt.level, tt.coins, tt.gems, tt.loginDays))
		})
	}
}

func TestScore_DefaultPlayer(t *testing.T) {
	p := domain.NewPlayer("p1", "", testNow)
	assert.Equal(t, 10+10*PointsPerGem, Score(p))
}

func TestSubmit_InsertsAtCorrectRank(t *testing.T) {
	b := NewBoard()
	b.Restore([]domain.LeaderboardEntry{entry("a", 300, 4), entry("b", 200, 3), entry("c", 100, 2)})

	b.Submit(playerWithScore("new", 250), testNow)

	got := b.Entries()
	require.Len(t, got, 4)
	assert.Equal(t, []string{"a", "new", "b", "c"}, []string{got[0].PlayerID, got[1].PlayerID, got[2].PlayerID, got[3].PlayerID})
	assert.Equal(t, 250, got[1].Score)
	assert.Equal(t, 2, b.Rank("new"))
	assertContiguous(t, got)
}

func TestSubmit_UpsertsWithoutDuplicating(t *testing.T) {
	b := NewBoard()
	p := playerWithScore("me", 50)
	b.Submit(p, testNow)
	b.Submit(p, testNow)

	p.Coins = 5000
	b.Submit(p, testNow.Add(time.Minute))

	require.Equal(t, 1, b.Len())
	e, ok := b.Entry("me")
	require.True(t, ok)
	assert.Equal(t, 500, e.Score)
	require.NotNil(t, e.LastActivity)
	assert.Equal(t, testNow.Add(time.Minute), *e.LastActivity)
}

func TestSubmit_TiesKeepInsertionOrder(t *testing.T) {
	b := NewBoard()
	b.Restore([]domain.LeaderboardEntry{entry("first", 100, 1), entry("second", 100, 1)})
	b.Submit(playerWithScore("third", 100), testNow)

	got := b.Entries()
	assert.Equal(t, "first", got[0].PlayerID)
	assert.Equal(t, "second", got[1].PlayerID)
	assert.Equal(t, "third", got[2].PlayerID)
}

func TestSubmit_TruncatesToLimit(t *testing.T) {
	b := NewBoard()
	seed := make([]domain.LeaderboardEntry, 0, domain.MaxLeaderboardEntries)
	for i := 0; i < domain.MaxLeaderboardEntries; i++ {
		seed = append(seed, entry(fmt.Sprintf("p%02d", i), 1000+i, 1))
	}
	b.Restore(seed)
	require.Equal(t, domain.MaxLeaderboardEntries, b.Len())

	b.Submit(playerWithScore("low", 1), testNow)
	assert.Equal(t, domain.MaxLeaderboardEntries, b.Len())
	assert.Equal(t, domain.MaxLeaderboardEntries+1, b.Rank("low"), "dropped entry ranks past the end")

	b.Submit(playerWithScore("high", 5000), testNow)
	assert.Equal(t, domain.MaxLeaderboardEntries, b.Len())
	assert.Equal(t, 1, b.Rank("high"))
	_, ok := b.Entry("p00")
	assert.False(t, ok, "lowest score falls off")
	assertContiguous(t, b.Entries())
}

func TestRank_Absent(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 1, b.Rank("ghost"))
	b.Restore([]domain.LeaderboardEntry{entry("a", 10, 1)})
	assert.Equal(t, 2, b.Rank("ghost"))
}

func TestRestore_RecomputesRanksAndDropsDuplicates(t *testing.T) {
	bad := entry("a", 10, 1)
	bad.Rank = 9
	b := NewBoard()
	b.Restore([]domain.LeaderboardEntry{bad, entry("b", 20, 1), entry("a", 99, 1), entry("", 5, 1)})

	got := b.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].PlayerID)
	assert.Equal(t, "a", got[1].PlayerID)
	assertContiguous(t, got)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	b := NewBoard()
	b.Submit(playerWithScore("me", 10), testNow)

	got := b.Entries()
	got[0].Score = 99999
	*got[0].LastActivity = testNow.Add(time.Hour)

	e, _ := b.Entry("me")
	assert.Equal(t, 10, e.Score)
	assert.Equal(t, testNow, *e.LastActivity)
}

func TestView_DoesNotMutateCanonicalOrder(t *testing.T) {
	b := NewBoard()
	b.Restore([]domain.LeaderboardEntry{
		entry("rich", 900, 2),
		entry("veteran", 500, 10),
		entry("mid", 700, 5),
	})

	levels := b.View(domain.CategoryLevel)
	assert.Equal(t, "veteran", levels[0].PlayerID)
	assert.Equal(t, "mid", levels[1].PlayerID)
	assert.Equal(t, "rich", levels[2].PlayerID)
	assertRanks(t, levels)

	daily := b.View(domain.CategoryDaily)
	// veteran 20+5, mid 10+7, rich 4+9
	assert.Equal(t, []string{"veteran", "mid", "rich"}, ids(daily))
	assertRanks(t, daily)

	scores := b.View(domain.CategoryScore)
	assert.Equal(t, []string{"rich", "mid", "veteran"}, ids(scores))

	assert.Equal(t, []string{"rich", "mid", "veteran"}, ids(b.Entries()))
	assert.Equal(t, 1, b.Rank("rich"))
}

func TestView_InvalidatedOnMutation(t *testing.T) {
	b := NewBoard()
	b.Restore([]domain.LeaderboardEntry{entry("a", 100, 1)})
	require.Len(t, b.View(domain.CategoryLevel), 1)

	b.Submit(playerWithScore("b", 50), testNow)
	assert.Len(t, b.View(domain.CategoryLevel), 2)

	b.Rename("b", "Bee")
	view := b.View(domain.CategoryScore)
	assert.Equal(t, "Bee", view[1].PlayerName)

	b.Clear()
	assert.Empty(t, b.View(domain.CategoryLevel))
}

func TestRemove_RerankRemaining(t *testing.T) {
	b := NewBoard()
	b.Restore([]domain.LeaderboardEntry{entry("a", 300, 3), entry("b", 200, 2), entry("c", 100, 1)})
	require.Len(t, b.View(domain.CategoryScore), 3)

	assert.True(t, b.Remove("b"))
	assert.False(t, b.Remove("b"))

	got := b.Entries()
	assert.Equal(t, []string{"a", "c"}, ids(got))
	assertContiguous(t, got)
	assert.Len(t, b.View(domain.CategoryScore), 2)
	assert.Equal(t, 3, b.Rank("b"))
}

func TestNewBoard_StartsNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		b := NewBoard()
		b.Submit(playerWithScore("a", 10), testNow)
		_ = b.View(domain.CategoryDaily)
	})
}

func assertRanks(t *testing.T, entries []domain.LeaderboardEntry) {
	t.Helper()
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func ids(entries []domain.LeaderboardEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.PlayerID
	}
	return out
}
