package leaderboard

import (
	"context"
	"io"
	"sync"

	leaderboardRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/leaderboard"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// Service maintains the ranked leaderboard view fed by the store's live
// subscription.
type Service interface {
	// Start opens the live subscription and keeps the snapshot current until
	// ctx is cancelled.
	Start(ctx context.Context) error
	// Refresh pulls the collection once and rebuilds the snapshot.
	Refresh(ctx context.Context) error
	// Snapshot returns the current ranked view.
	Snapshot() models.LeaderboardSnapshot
	// ExportCSV writes the current ranking as CSV.
	ExportCSV(w io.Writer) error
}

// DefaultService is the production Service implementation.
type DefaultService struct {
	Repo      leaderboardRepo.LeaderboardRepository
	BestRanks BestRankStore
	// SlackTeamURL prefixes vendor ids into profile links; optional.
	SlackTeamURL string

	mu        sync.RWMutex
	snapshot  models.LeaderboardSnapshot
	prevRanks map[string]int
}
