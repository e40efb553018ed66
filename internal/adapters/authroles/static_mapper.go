package authroles

import (
	"strings"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
)

// StaticRoleMapper maps the backend's role strings onto domain roles.
// Exact matches win; Aliases covers spellings seen from older backend builds
// (e.g. "SUPER_ADMIN"). Anything else maps to "" so the resolver falls back to
// the landing page only.
type StaticRoleMapper struct {
	Aliases map[string]domainauth.Role
}

// DefaultRoleMapper accepts underscore and lower-case variants.
func DefaultRoleMapper() StaticRoleMapper {
	aliases := make(map[string]domainauth.Role)
	for _, r := range domainauth.Roles() {
		aliases[strings.ReplaceAll(string(r), " ", "_")] = r
	}
	return StaticRoleMapper{Aliases: aliases}
}

func (m StaticRoleMapper) Map(raw string) domainauth.Role {
	role := domainauth.Role(strings.TrimSpace(raw))
	if role.Known() {
		return role
	}
	if r, ok := m.Aliases[strings.ToUpper(string(role))]; ok {
		return r
	}
	return ""
}
