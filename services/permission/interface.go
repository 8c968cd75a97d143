package permission

import (
	"context"

	mappingRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/mapping"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// Decision is the outcome of a permission resolution.
type Decision struct {
	Allowed bool
	IsAdmin bool
	// Caller is the mapping entry matched against the caller's email.
	Caller models.VendorInfo
}

// Resolver decides whether an authenticated caller may mutate a target
// vendor's sale records.
type Resolver interface {
	Resolve(ctx context.Context, callerEmail, targetVendorID string) (Decision, error)
}

// DefaultResolver resolves permissions against the vendor mapping document.
type DefaultResolver struct {
	Mapping mappingRepo.MappingRepository
}
