package sales

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"github.com/Martial4034/gigi-sales-leaderboard/models"
	"github.com/Martial4034/gigi-sales-leaderboard/utils"
)

// UpdateSale applies a partial update to one sale record. Sequence: permission
// check, payload validation, record location, one atomic field-merge call.
func (s *DefaultService) UpdateSale(ctx context.Context, callerEmail, vendorID string, req models.UpdateSaleRequest) error {
	logger := utils.GetLogger()

	if _, err := s.Permissions.Resolve(ctx, callerEmail, vendorID); err != nil {
		return err
	}

	if req.Challenge == "" {
		return ValidationError{Field: "challenge", Reason: "is required"}
	}
	if req.Updates.IsEmpty() {
		return ValidationError{Field: "updates", Reason: "at least one field is required"}
	}
	if err := validateUpdates(req.Updates); err != nil {
		return err
	}

	sale, err := s.locate(ctx, req.Challenge, vendorID, req.SaleID, req.Timestamp)
	if err != nil {
		return err
	}

	updates := buildUpdates(req.Updates)
	if err := s.Repo.UpdateFields(ctx, req.Challenge, sale.DocID, updates); err != nil {
		return err
	}

	logger.Info("sale updated",
		zap.String("vendor", vendorID),
		zap.String("challenge", req.Challenge),
		zap.String("doc", sale.DocID),
		zap.Int("fields", len(updates)))
	return nil
}

// DeleteSale removes one sale record. Same pipeline as UpdateSale minus the
// payload validation.
func (s *DefaultService) DeleteSale(ctx context.Context, callerEmail, vendorID string, req models.DeleteSaleRequest) error {
	logger := utils.GetLogger()

	if _, err := s.Permissions.Resolve(ctx, callerEmail, vendorID); err != nil {
		return err
	}

	if req.Challenge == "" {
		return ValidationError{Field: "challenge", Reason: "is required"}
	}

	sale, err := s.locate(ctx, req.Challenge, vendorID, req.SaleID, req.Timestamp)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, req.Challenge, sale.DocID); err != nil {
		return err
	}

	logger.Info("sale deleted",
		zap.String("vendor", vendorID),
		zap.String("challenge", req.Challenge),
		zap.String("doc", sale.DocID))
	return nil
}

// buildUpdates translates present payload fields into store update operations.
// Absent fields are left untouched.
func buildUpdates(u models.SaleUpdates) []firestore.Update {
	var updates []firestore.Update
	if u.BotMode != nil {
		updates = append(updates, firestore.Update{Path: "BotMode", Value: *u.BotMode})
	}
	if u.CashCollected != nil {
		updates = append(updates, firestore.Update{Path: "Firebase_cashCollected", Value: *u.CashCollected})
	}
	if u.TotalRevenue != nil {
		updates = append(updates, firestore.Update{Path: "Firebase_totalRevenue", Value: *u.TotalRevenue})
	}
	if u.Commentaire != nil {
		updates = append(updates, firestore.Update{Path: "Botcommentaire", Value: *u.Commentaire})
	}
	if u.FirstName != nil {
		updates = append(updates, firestore.Update{Path: "BotFirstName", Value: *u.FirstName})
	}
	if u.LastName != nil {
		updates = append(updates, firestore.Update{Path: "BotLastName", Value: *u.LastName})
	}
	return updates
}

// VendorSales returns a vendor's sales for one challenge, or for every
// configured challenge when challenge is empty or "all", newest first, with
// per-vendor totals.
func (s *DefaultService) VendorSales(ctx context.Context, vendorID, challenge string) ([]models.SaleRecord, models.VendorTotals, error) {
	challenges := s.Challenges
	if challenge != "" && challenge != "all" {
		challenges = []string{challenge}
	}

	var sales []models.SaleRecord
	for _, ch := range challenges {
		records, err := s.Repo.ListByVendor(ctx, ch, vendorID)
		if err != nil {
			return nil, models.VendorTotals{}, err
		}
		sales = append(sales, records...)
	}

	sort.Slice(sales, func(i, j int) bool {
		return sales[i].Timestamp.After(sales[j].Timestamp)
	})

	var totals models.VendorTotals
	for _, sale := range sales {
		totals.NbSales++
		totals.CashCollected += sale.CashCollected
		totals.TotalRevenue += sale.TotalRevenue
	}
	return sales, totals, nil
}

// AvailableChallenges reports which configured challenge collections hold at
// least one document.
func (s *DefaultService) AvailableChallenges(ctx context.Context) ([]string, error) {
	available := make([]string, 0, len(s.Challenges))
	for _, ch := range s.Challenges {
		ok, err := s.Repo.HasDocuments(ctx, ch)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, ch)
		}
	}
	return available, nil
}
