package leaderboard

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Martial4034/gigi-sales-leaderboard/models"
	"github.com/Martial4034/gigi-sales-leaderboard/utils"
)

// Start opens the live subscription and consumes it on a background goroutine
// until ctx is cancelled. Delivery is eventual and push-based; no ordering
// guarantee is made relative to mutations completing elsewhere.
func (s *DefaultService) Start(ctx context.Context) error {
	ch, err := s.Repo.Watch(ctx)
	if err != nil {
		return err
	}

	go func() {
		logger := utils.GetLogger()
		for entries := range ch {
			s.apply(ctx, entries)
			logger.Debug("leaderboard snapshot applied", zap.Int("entries", len(entries)))
		}
		logger.Info("leaderboard subscription closed")
	}()
	return nil
}

// Refresh pulls the collection once and rebuilds the snapshot. Used at
// startup so the first request does not wait for the subscription.
func (s *DefaultService) Refresh(ctx context.Context) error {
	entries, err := s.Repo.FetchAll(ctx)
	if err != nil {
		return err
	}
	s.apply(ctx, entries)
	return nil
}

// Snapshot returns the current ranked view.
func (s *DefaultService) Snapshot() models.LeaderboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// apply ranks the entries, computes deltas against the previous snapshot and
// updates persisted best ranks.
func (s *DefaultService) apply(ctx context.Context, entries []models.LeaderboardEntry) {
	logger := utils.GetLogger()
	ranked := Rank(entries)

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := models.LeaderboardSnapshot{
		Entries:       ranked,
		UpdatedAtUnix: time.Now().Unix(),
	}
	nextRanks := make(map[string]int, len(ranked))

	for i := range ranked {
		entry := &ranked[i]
		nextRanks[entry.ID] = entry.CurrentRank

		if prev, ok := s.prevRanks[entry.ID]; ok {
			entry.PreviousRank = prev
			entry.RankChange = prev - entry.CurrentRank
		}

		best, err := s.BestRanks.Get(ctx, entry.ID)
		if err != nil {
			logger.Warn("best rank lookup failed", zap.String("vendor", entry.ID), zap.Error(err))
		}
		if best == 0 || entry.CurrentRank < best {
			best = entry.CurrentRank
			if err := s.BestRanks.Set(ctx, entry.ID, best); err != nil {
				logger.Warn("best rank store failed", zap.String("vendor", entry.ID), zap.Error(err))
			}
		}
		entry.BestRank = best

		if s.SlackTeamURL != "" {
			entry.SlackURL = s.SlackTeamURL + entry.ID
		}

		snapshot.TotalSales += entry.NbSales
		snapshot.TotalCash += entry.CashCollected
		snapshot.TotalRevenue += entry.TotalRevenue
	}

	s.prevRanks = nextRanks
	s.snapshot = snapshot
}

// Rank sorts entries by sales count descending, cash collected descending as
// the tie-break, and assigns 1-based ranks.
func Rank(entries []models.LeaderboardEntry) []models.RankedEntry {
	sorted := make([]models.LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].NbSales != sorted[j].NbSales {
			return sorted[i].NbSales > sorted[j].NbSales
		}
		return sorted[i].CashCollected > sorted[j].CashCollected
	})

	ranked := make([]models.RankedEntry, len(sorted))
	for i, entry := range sorted {
		ranked[i] = models.RankedEntry{
			LeaderboardEntry: entry,
			CurrentRank:      i + 1,
		}
	}
	return ranked
}
