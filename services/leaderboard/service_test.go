package leaderboard

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// memoryBestRankStore is the in-memory BestRankStore used in tests.
type memoryBestRankStore struct {
	ranks map[string]int
}

func newMemoryBestRankStore() *memoryBestRankStore {
	return &memoryBestRankStore{ranks: make(map[string]int)}
}

func (s *memoryBestRankStore) Get(ctx context.Context, vendorID string) (int, error) {
	return s.ranks[vendorID], nil
}

func (s *memoryBestRankStore) Set(ctx context.Context, vendorID string, rank int) error {
	s.ranks[vendorID] = rank
	return nil
}

// fakeBoardRepo serves a settable entry slice.
type fakeBoardRepo struct {
	entries []models.LeaderboardEntry
}

func (f *fakeBoardRepo) FetchAll(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return f.entries, nil
}

func (f *fakeBoardRepo) Watch(ctx context.Context) (<-chan []models.LeaderboardEntry, error) {
	ch := make(chan []models.LeaderboardEntry, 1)
	ch <- f.entries
	close(ch)
	return ch, nil
}

func TestRank_SortsBySalesThenCash(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{ID: "a", Name: "A", NbSales: 3, CashCollected: 100},
		{ID: "b", Name: "B", NbSales: 5, CashCollected: 10},
		{ID: "c", Name: "C", NbSales: 3, CashCollected: 900},
	}

	ranked := Rank(entries)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].ID)
	assert.Equal(t, "c", ranked[1].ID, "cash collected breaks the sales tie")
	assert.Equal(t, "a", ranked[2].ID)
	assert.Equal(t, 1, ranked[0].CurrentRank)
	assert.Equal(t, 3, ranked[2].CurrentRank)
}

func TestRefresh_ComputesTotalsAndBestRanks(t *testing.T) {
	repo := &fakeBoardRepo{entries: []models.LeaderboardEntry{
		{ID: "a", Name: "A", NbSales: 2, CashCollected: 200, TotalRevenue: 11600},
		{ID: "b", Name: "B", NbSales: 4, CashCollected: 100, TotalRevenue: 24000},
	}}
	store := newMemoryBestRankStore()
	svc := &DefaultService{Repo: repo, BestRanks: store, SlackTeamURL: "https://teliosa.slack.com/team/"}

	require.NoError(t, svc.Refresh(context.Background()))
	snap := svc.Snapshot()

	assert.Equal(t, 6, snap.TotalSales)
	assert.Equal(t, float64(300), snap.TotalCash)
	assert.Equal(t, float64(35600), snap.TotalRevenue)

	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "b", snap.Entries[0].ID)
	assert.Equal(t, 1, snap.Entries[0].BestRank)
	assert.Equal(t, 2, snap.Entries[1].BestRank)
	assert.Equal(t, "https://teliosa.slack.com/team/b", snap.Entries[0].SlackURL)
	assert.Equal(t, 1, store.ranks["b"])
}

func TestRefresh_TracksRankDeltasAndKeepsBestRank(t *testing.T) {
	repo := &fakeBoardRepo{entries: []models.LeaderboardEntry{
		{ID: "a", NbSales: 5},
		{ID: "b", NbSales: 3},
	}}
	store := newMemoryBestRankStore()
	svc := &DefaultService{Repo: repo, BestRanks: store}
	require.NoError(t, svc.Refresh(context.Background()))

	// b overtakes a.
	repo.entries = []models.LeaderboardEntry{
		{ID: "a", NbSales: 5},
		{ID: "b", NbSales: 7},
	}
	require.NoError(t, svc.Refresh(context.Background()))
	snap := svc.Snapshot()

	require.Len(t, snap.Entries, 2)
	b := snap.Entries[0]
	assert.Equal(t, "b", b.ID)
	assert.Equal(t, 2, b.PreviousRank)
	assert.Equal(t, 1, b.RankChange, "moved up one position")
	assert.Equal(t, 1, b.BestRank)

	a := snap.Entries[1]
	assert.Equal(t, -1, a.RankChange, "moved down one position")
	assert.Equal(t, 1, a.BestRank, "best rank never degrades")
}

func TestStart_AppliesWatchedSnapshot(t *testing.T) {
	repo := &fakeBoardRepo{entries: []models.LeaderboardEntry{
		{ID: "a", NbSales: 1},
	}}
	svc := &DefaultService{Repo: repo, BestRanks: newMemoryBestRankStore()}

	require.NoError(t, svc.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return len(svc.Snapshot().Entries) == 1
	}, 100*time.Millisecond, 5*time.Millisecond)
}

func TestExportCSV(t *testing.T) {
	repo := &fakeBoardRepo{entries: []models.LeaderboardEntry{
		{ID: "a", Name: "Alice", NbSales: 2, CashCollected: 150, TotalRevenue: 11600},
	}}
	svc := &DefaultService{Repo: repo, BestRanks: newMemoryBestRankStore()}
	require.NoError(t, svc.Refresh(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Position,Nom,Ventes,Cash Collecté,Revenu Total", lines[0])
	assert.Equal(t, "1,Alice,2,150,11600", lines[1])
}
