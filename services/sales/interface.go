package sales

import (
	"context"

	salesRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/sales"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
	"github.com/Martial4034/gigi-sales-leaderboard/services/permission"
)

// Service orchestrates the sale mutation flows: permission check, payload
// validation, record location, then a single atomic store call.
type Service interface {
	UpdateSale(ctx context.Context, callerEmail, vendorID string, req models.UpdateSaleRequest) error
	DeleteSale(ctx context.Context, callerEmail, vendorID string, req models.DeleteSaleRequest) error
	VendorSales(ctx context.Context, vendorID, challenge string) ([]models.SaleRecord, models.VendorTotals, error)
	AvailableChallenges(ctx context.Context) ([]string, error)
}

// DefaultService is the production Service implementation.
type DefaultService struct {
	Repo        salesRepo.SalesRepository
	Permissions permission.Resolver
	// Challenges is the configured list of challenge collection names.
	Challenges []string
}
