package mappingRepo

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/Martial4034/gigi-sales-leaderboard/config"
	"github.com/Martial4034/gigi-sales-leaderboard/database"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// ErrMappingEmpty is returned when the mapping collection holds no document.
var ErrMappingEmpty = errors.New("vendor mapping collection is empty")

// MappingRepository reads the vendor mapping document. The mapping is
// read-only from this service; no write methods exist on purpose.
type MappingRepository interface {
	Fetch(ctx context.Context) (models.VendorMapping, error)
}

type firestoreMappingRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreMappingRepo returns a MappingRepository backed by Firestore.
func NewFirestoreMappingRepo() MappingRepository {
	return &firestoreMappingRepo{
		coll: database.FirestoreClient.Collection(config.AppConfig.MappingCollection),
	}
}
