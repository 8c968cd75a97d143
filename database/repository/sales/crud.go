package salesRepo

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// GetByID fetches one sale by its Firestore document id.
func (r *firestoreSalesRepo) GetByID(ctx context.Context, challenge, docID string) (*models.SaleRecord, error) {
	doc, err := r.client.Collection(challenge).Doc(docID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get sale %s/%s: %w", challenge, docID, err)
	}

	var sale models.SaleRecord
	if err := doc.DataTo(&sale); err != nil {
		return nil, fmt.Errorf("decode sale %s/%s: %w", challenge, docID, err)
	}
	sale.DocID = doc.Ref.ID
	sale.Challenge = challenge
	return &sale, nil
}

// UpdateFields applies a partial field merge in a single atomic call. Fields
// absent from updates are left untouched.
func (r *firestoreSalesRepo) UpdateFields(ctx context.Context, challenge, docID string, updates []firestore.Update) error {
	_, err := r.client.Collection(challenge).Doc(docID).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("update sale %s/%s: %w", challenge, docID, err)
	}
	return nil
}

// Delete removes one sale document.
func (r *firestoreSalesRepo) Delete(ctx context.Context, challenge, docID string) error {
	_, err := r.client.Collection(challenge).Doc(docID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete sale %s/%s: %w", challenge, docID, err)
	}
	return nil
}
