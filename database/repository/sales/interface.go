package salesRepo

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/Martial4034/gigi-sales-leaderboard/database"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// ErrRecordNotFound is returned when no sale document matches the address.
var ErrRecordNotFound = errors.New("sale record not found")

// SalesRepository accesses sale documents inside challenge-named collections.
// Records are created by an external ingestion process; this service only
// lists, updates and deletes them.
type SalesRepository interface {
	// ListByVendor returns all sales of one vendor in a challenge collection.
	ListByVendor(ctx context.Context, challenge, vendorID string) ([]models.SaleRecord, error)
	// ListAll returns every sale document of a challenge collection.
	ListAll(ctx context.Context, challenge string) ([]models.SaleRecord, error)
	// GetByID fetches one sale by its Firestore document id.
	GetByID(ctx context.Context, challenge, docID string) (*models.SaleRecord, error)
	// UpdateFields applies a partial field merge in a single atomic call.
	UpdateFields(ctx context.Context, challenge, docID string, updates []firestore.Update) error
	// Delete removes one sale document.
	Delete(ctx context.Context, challenge, docID string) error
	// HasDocuments reports whether a challenge collection holds any document.
	HasDocuments(ctx context.Context, challenge string) (bool, error)
}

type firestoreSalesRepo struct {
	client *firestore.Client
}

// NewFirestoreSalesRepo returns a SalesRepository backed by Firestore.
func NewFirestoreSalesRepo() SalesRepository {
	return &firestoreSalesRepo{client: database.FirestoreClient}
}
