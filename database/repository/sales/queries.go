package salesRepo

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"

	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// ListByVendor returns all sales of one vendor in a challenge collection,
// matched by equality on id_slack.
func (r *firestoreSalesRepo) ListByVendor(ctx context.Context, challenge, vendorID string) ([]models.SaleRecord, error) {
	iter := r.client.Collection(challenge).Where("id_slack", "==", vendorID).Documents(ctx)
	defer iter.Stop()

	var sales []models.SaleRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list sales for vendor %s in %s: %w", vendorID, challenge, err)
		}

		var sale models.SaleRecord
		if err := doc.DataTo(&sale); err != nil {
			return nil, fmt.Errorf("decode sale %s/%s: %w", challenge, doc.Ref.ID, err)
		}
		sale.DocID = doc.Ref.ID
		sale.Challenge = challenge
		sales = append(sales, sale)
	}
	return sales, nil
}

// ListAll returns every sale document of a challenge collection.
func (r *firestoreSalesRepo) ListAll(ctx context.Context, challenge string) ([]models.SaleRecord, error) {
	iter := r.client.Collection(challenge).Documents(ctx)
	defer iter.Stop()

	var sales []models.SaleRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list sales in %s: %w", challenge, err)
		}

		var sale models.SaleRecord
		if err := doc.DataTo(&sale); err != nil {
			return nil, fmt.Errorf("decode sale %s/%s: %w", challenge, doc.Ref.ID, err)
		}
		sale.DocID = doc.Ref.ID
		sale.Challenge = challenge
		sales = append(sales, sale)
	}
	return sales, nil
}

// HasDocuments reports whether a challenge collection holds any document.
func (r *firestoreSalesRepo) HasDocuments(ctx context.Context, challenge string) (bool, error) {
	iter := r.client.Collection(challenge).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("probe challenge %s: %w", challenge, err)
	}
	return true, nil
}
