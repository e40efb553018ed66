package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
)

func TestResolve_NavEntriesAreRoutable(t *testing.T) {
	for _, role := range auth.Roles() {
		t.Run(string(role), func(t *testing.T) {
			res := Resolve(role)
			require.NotEmpty(t, res.NavEntries)
			for _, nav := range res.NavEntries {
				assert.True(t, res.Allows(nav.Path), "nav entry %s has no route", nav.Path)
			}
		})
	}
}

func TestResolve_UnknownRole(t *testing.T) {
	for _, role := range []auth.Role{"", "WAREHOUSE", "super admin"} {
		res := Resolve(role)
		assert.Empty(t, res.NavEntries)
		require.Len(t, res.Routes, 1)
		assert.Equal(t, LandingPath, res.Routes[0].Path)
		assert.True(t, res.Allows("/"))
		assert.False(t, res.Allows("/overview"))
	}
}

func TestResolve_RoleTables(t *testing.T) {
	tests := []struct {
		role    auth.Role
		allowed []string
		denied  []string
	}{
		{
			role:    auth.RoleSuperAdmin,
			allowed: []string{"/overview", "/form-data", "/deleted-bills/b1", "/quote/q1", "/req-edit-bills/9"},
		},
		{
			role:    auth.RoleProductManager,
			allowed: []string{"/inventory", "/store-details/s1", "/inventory-details/i1", "/tracking/AWB1"},
			denied:  []string{"/quote", "/coupon", "/store-bills", "/deleted-bills", "/uploaded-history"},
		},
		{
			role:    auth.RoleInventoryManager,
			allowed: []string{"/raised-inventory/r1", "/assigned-inventory", "/cancel-details/o1"},
			denied:  []string{"/form-data", "/req-edit-bills"},
		},
		{
			role:    auth.RoleCustomerCare,
			allowed: []string{"/overview", "/online-orders", "/order-details/o1", "/quote/q1"},
			denied:  []string{"/inventory", "/store-creation", "/coupon", "/form-data"},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			for _, p := range tt.allowed {
				assert.True(t, Allows(tt.role, p), "expected %s allowed", p)
			}
			for _, p := range tt.denied {
				assert.False(t, Allows(tt.role, p), "expected %s denied", p)
			}
		})
	}
}

func TestResolve_ManagersShareTable(t *testing.T) {
	pm := Resolve(auth.RoleProductManager)
	im := Resolve(auth.RoleInventoryManager)
	assert.Equal(t, pm.NavEntries, im.NavEntries)
	assert.Equal(t, pm.Routes, im.Routes)
}

func TestResolve_DeepLinksNotInNav(t *testing.T) {
	res := Resolve(auth.RoleSuperAdmin)
	for _, nav := range res.NavEntries {
		assert.NotContains(t, nav.Path, "{")
	}
	assert.True(t, res.Has(Quotes))
	assert.Len(t, res.NavEntries, len(Screens()))
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern, path string
		want          bool
	}{
		{"/", "/", true},
		{"/", "/overview", false},
		{"/overview", "/overview/", true},
		{"/order-details/{orderId}", "/order-details/abc", true},
		{"/order-details/{orderId}", "/order-details/", false},
		{"/order-details/{orderId}", "/order-details/a/b", false},
		{"/upload-history/{uploadId}/products", "/upload-history/u1/products", true},
		{"/upload-history/{uploadId}/products", "/upload-history/u1/items", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchPattern(tt.pattern, tt.path), "%s vs %s", tt.pattern, tt.path)
	}
}

func TestCapabilitiesFor_ReturnsCopy(t *testing.T) {
	caps := CapabilitiesFor(auth.RoleCustomerCare)
	caps[0] = Contacts
	assert.Equal(t, Overview, CapabilitiesFor(auth.RoleCustomerCare)[0])
	assert.Nil(t, CapabilitiesFor("nobody"))
}
