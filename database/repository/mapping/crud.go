package mappingRepo

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"

	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// Fetch returns the first (and in practice only) document of the mapping
// collection, decoded as vendor id -> VendorInfo.
func (r *firestoreMappingRepo) Fetch(ctx context.Context) (models.VendorMapping, error) {
	iter := r.coll.Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrMappingEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("fetch vendor mapping: %w", err)
	}

	var mapping models.VendorMapping
	if err := doc.DataTo(&mapping); err != nil {
		return nil, fmt.Errorf("decode vendor mapping: %w", err)
	}
	return mapping, nil
}
