package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
)

func TestStaticRoleMapper_Map(t *testing.T) {
	m := DefaultRoleMapper()

	assert.Equal(t, domainauth.RoleSuperAdmin, m.Map("SUPER ADMIN"))
	assert.Equal(t, domainauth.RoleCustomerCare, m.Map(" CUSTOMER CARE "))
	assert.Equal(t, domainauth.RoleInventoryManager, m.Map("inventory_manager"))
	assert.Equal(t, domainauth.Role(""), m.Map("WAREHOUSE"))
	assert.Equal(t, domainauth.Role(""), m.Map(""))
}
