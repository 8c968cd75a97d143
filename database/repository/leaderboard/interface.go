package leaderboardRepo

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/Martial4034/gigi-sales-leaderboard/config"
	"github.com/Martial4034/gigi-sales-leaderboard/database"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// LeaderboardRepository reads the aggregate leaderboard collection. The
// collection is maintained by the external ingestion process.
type LeaderboardRepository interface {
	// FetchAll returns the current contents of the leaderboard collection.
	FetchAll(ctx context.Context) ([]models.LeaderboardEntry, error)
	// Watch delivers the full collection contents on every change until ctx
	// is cancelled. The channel is closed when the subscription ends.
	Watch(ctx context.Context) (<-chan []models.LeaderboardEntry, error)
}

type firestoreLeaderboardRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreLeaderboardRepo returns a LeaderboardRepository backed by Firestore.
func NewFirestoreLeaderboardRepo() LeaderboardRepository {
	return &firestoreLeaderboardRepo{
		coll: database.FirestoreClient.Collection(config.AppConfig.LeaderboardCollection),
	}
}
