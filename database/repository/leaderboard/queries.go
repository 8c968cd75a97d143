package leaderboardRepo

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Martial4034/gigi-sales-leaderboard/models"
	"github.com/Martial4034/gigi-sales-leaderboard/utils"
)

func decodeEntries(docs []*firestore.DocumentSnapshot) ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0, len(docs))
	for _, doc := range docs {
		var entry models.LeaderboardEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("decode leaderboard entry %s: %w", doc.Ref.ID, err)
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, entry)
	}
	return entries, nil
}

// FetchAll returns the current contents of the leaderboard collection,
// ordered by sales count as the store returns them.
func (r *firestoreLeaderboardRepo) FetchAll(ctx context.Context) ([]models.LeaderboardEntry, error) {
	iter := r.coll.OrderBy("nbSales", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var entries []models.LeaderboardEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fetch leaderboard: %w", err)
		}

		var entry models.LeaderboardEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("decode leaderboard entry %s: %w", doc.Ref.ID, err)
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, entry)
	}
	return entries, nil
}

// Watch opens a snapshot subscription on the leaderboard collection and
// delivers the full contents on every change. Eventual and push-based; no
// ordering guarantee relative to mutations elsewhere.
func (r *firestoreLeaderboardRepo) Watch(ctx context.Context) (<-chan []models.LeaderboardEntry, error) {
	logger := utils.GetLogger()
	snaps := r.coll.OrderBy("nbSales", firestore.Desc).Snapshots(ctx)

	ch := make(chan []models.LeaderboardEntry, 1)
	go func() {
		defer close(ch)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("leaderboard subscription ended", zap.Error(err))
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("leaderboard snapshot read failed", zap.Error(err))
				continue
			}
			entries, err := decodeEntries(docs)
			if err != nil {
				logger.Error("leaderboard snapshot decode failed", zap.Error(err))
				continue
			}

			select {
			case ch <- entries:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
