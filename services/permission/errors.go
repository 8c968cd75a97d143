package permission

import "errors"

// Failure taxonomy of the permission resolver. Handlers translate these to
// HTTP statuses; nothing here is retried.
var (
	// ErrUnauthenticated: no caller identity was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrMappingUnavailable: the vendor mapping collection is empty.
	ErrMappingUnavailable = errors.New("vendor mapping unavailable")
	// ErrCallerUnrecognized: the caller's email appears nowhere in the mapping.
	ErrCallerUnrecognized = errors.New("caller not present in vendor mapping")
	// ErrTargetVendorUnknown: the target vendor id is not in the mapping.
	ErrTargetVendorUnknown = errors.New("target vendor not present in mapping")
	// ErrForbidden: caller is recognized but neither admin nor the vendor itself.
	ErrForbidden = errors.New("caller may not edit this vendor's records")
)
