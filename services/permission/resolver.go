package permission

import (
	"context"
	"errors"

	mappingRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/mapping"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

// Resolve fetches the vendor mapping and decides edit eligibility for the
// caller against the target vendor.
func (r *DefaultResolver) Resolve(ctx context.Context, callerEmail, targetVendorID string) (Decision, error) {
	if callerEmail == "" {
		return Decision{}, ErrUnauthenticated
	}

	mapping, err := r.Mapping.Fetch(ctx)
	if err != nil {
		if errors.Is(err, mappingRepo.ErrMappingEmpty) {
			return Decision{}, ErrMappingUnavailable
		}
		return Decision{}, err
	}

	return ResolveWithMapping(callerEmail, targetVendorID, mapping)
}

// ResolveWithMapping applies the eligibility rules against an already-fetched
// mapping. An email index is built once instead of rescanning the document
// per lookup; comparison is exact and case-sensitive as stored. Admin status
// short-circuits the self-match check.
func ResolveWithMapping(callerEmail, targetVendorID string, mapping models.VendorMapping) (Decision, error) {
	if callerEmail == "" {
		return Decision{}, ErrUnauthenticated
	}
	if len(mapping) == 0 {
		return Decision{}, ErrMappingUnavailable
	}

	byEmail := make(map[string]models.VendorInfo, len(mapping))
	for _, info := range mapping {
		if info.Email == "" {
			continue
		}
		if _, seen := byEmail[info.Email]; !seen {
			byEmail[info.Email] = info
		}
	}

	caller, ok := byEmail[callerEmail]
	if !ok {
		return Decision{}, ErrCallerUnrecognized
	}

	if caller.IsAdmin {
		return Decision{Allowed: true, IsAdmin: true, Caller: caller}, nil
	}

	target, ok := mapping[targetVendorID]
	if !ok {
		return Decision{}, ErrTargetVendorUnknown
	}
	if target.Email != "" && target.Email == callerEmail {
		return Decision{Allowed: true, Caller: caller}, nil
	}
	return Decision{}, ErrForbidden
}
