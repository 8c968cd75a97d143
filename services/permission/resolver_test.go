package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mappingRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/mapping"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

func testMapping() models.VendorMapping {
	return models.VendorMapping{
		"v1": {Name: "Alice", Email: "a@x.com", IsAdmin: true},
		"v2": {Name: "Bob", Email: "b@x.com"},
		"v3": {Name: "Carol"},
	}
}

func TestResolveWithMapping_AdminAllowedForAnyVendor(t *testing.T) {
	mapping := testMapping()

	for _, target := range []string{"v1", "v2", "v3", "does-not-exist"} {
		decision, err := ResolveWithMapping("a@x.com", target, mapping)
		require.NoError(t, err, "admin must be allowed for target %q", target)
		assert.True(t, decision.Allowed)
		assert.True(t, decision.IsAdmin)
	}
}

func TestResolveWithMapping_SelfMatchAllowed(t *testing.T) {
	decision, err := ResolveWithMapping("b@x.com", "v2", testMapping())
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.False(t, decision.IsAdmin)
}

func TestResolveWithMapping_NonAdminDeniedForOtherVendor(t *testing.T) {
	_, err := ResolveWithMapping("b@x.com", "v1", testMapping())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestResolveWithMapping_CallerUnrecognized(t *testing.T) {
	_, err := ResolveWithMapping("nobody@x.com", "v2", testMapping())
	assert.ErrorIs(t, err, ErrCallerUnrecognized)
}

func TestResolveWithMapping_TargetVendorUnknown(t *testing.T) {
	_, err := ResolveWithMapping("b@x.com", "ghost", testMapping())
	assert.ErrorIs(t, err, ErrTargetVendorUnknown)
}

func TestResolveWithMapping_Unauthenticated(t *testing.T) {
	_, err := ResolveWithMapping("", "v2", testMapping())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolveWithMapping_EmptyMapping(t *testing.T) {
	_, err := ResolveWithMapping("a@x.com", "v1", models.VendorMapping{})
	assert.ErrorIs(t, err, ErrMappingUnavailable)
}

func TestResolveWithMapping_EmailCompareIsCaseSensitive(t *testing.T) {
	_, err := ResolveWithMapping("A@X.COM", "v1", testMapping())
	assert.ErrorIs(t, err, ErrCallerUnrecognized)
}

func TestResolveWithMapping_EmptyEmailEntriesNeverMatch(t *testing.T) {
	// v3 has no email; an unauthenticated-looking caller must not match it,
	// and v3 itself is not editable through the self-match rule.
	_, err := ResolveWithMapping("b@x.com", "v3", testMapping())
	assert.ErrorIs(t, err, ErrForbidden)
}

type fakeMappingRepo struct {
	mapping models.VendorMapping
	err     error
}

func (f *fakeMappingRepo) Fetch(ctx context.Context) (models.VendorMapping, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.mapping, nil
}

func TestDefaultResolver_MappingUnavailable(t *testing.T) {
	resolver := &DefaultResolver{Mapping: &fakeMappingRepo{err: mappingRepo.ErrMappingEmpty}}
	_, err := resolver.Resolve(context.Background(), "a@x.com", "v1")
	assert.ErrorIs(t, err, ErrMappingUnavailable)
}

func TestDefaultResolver_ResolvesAgainstFetchedMapping(t *testing.T) {
	resolver := &DefaultResolver{Mapping: &fakeMappingRepo{mapping: testMapping()}}

	decision, err := resolver.Resolve(context.Background(), "a@x.com", "v2")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	_, err = resolver.Resolve(context.Background(), "b@x.com", "v1")
	assert.ErrorIs(t, err, ErrForbidden)
}
