package leaderboard

import (
	"fmt"
	"testing"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

func benchBoard(n int) *Board {
	b := NewBoard()
	entries := make([]domain.LeaderboardEntry, n)
	for i := range entries {
		id := fmt.Sprintf("demo-%d", i)
		entries[i] = entry(id, i*7%1000, 1+i%20)
	}
	b.Merge(entries)
	return b
}

func BenchmarkSubmit(b *testing.B) {
	board := benchBoard(200)
	p := playerWithScore("local", 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Coins = (i % 1000) * CoinsPerPoint
		board.Submit(p, testNow)
	}
}

func BenchmarkView(b *testing.B) {
	board := benchBoard(200)
	categories := []domain.LeaderboardCategory{domain.CategoryScore, domain.CategoryLevel, domain.CategoryDaily}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.View(categories[i%len(categories)])
	}
}
