package sales

import (
	"context"
	"errors"

	salesRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/sales"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// locate finds the unique sale addressed by the request. When the caller
// supplies the Firestore document id it is tried first and verified against
// the vendor and timestamp; otherwise the (id_slack, timestamp) composite is
// resolved by listing the vendor's sales and scanning for the exact timestamp
// pair. The composite is not enforced store-side: if duplicates exist, the
// first match in store iteration order wins.
func (s *DefaultService) locate(ctx context.Context, challenge, vendorID, saleID string, ts models.SaleTimestamp) (*models.SaleRecord, error) {
	if saleID != "" {
		sale, err := s.Repo.GetByID(ctx, challenge, saleID)
		if err == nil {
			if sale.IDSlack == vendorID && ts.Matches(sale.Timestamp) {
				return sale, nil
			}
			// Stale or foreign id; fall back to the composite scan.
		} else if !errors.Is(err, salesRepo.ErrRecordNotFound) {
			return nil, err
		}
	}

	records, err := s.Repo.ListByVendor(ctx, challenge, vendorID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if ts.Matches(records[i].Timestamp) {
			return &records[i], nil
		}
	}
	return nil, salesRepo.ErrRecordNotFound
}
