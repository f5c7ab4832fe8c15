package validation

import "github.com/avoelker/radplan/pkg/core/model"

// legacyNonRadiologistRole predates the excluded_from_statistics column;
// rows without the column are excluded only if they carry this name.
const legacyNonRadiologistRole = "Nicht-Radiologe"

// RoleCatalog resolves duty eligibility from team role records. The team
// role table was seeded before the boolean eligibility columns existed, so
// every accessor degrades gracefully for rows (or role names) without
// explicit configuration.
type RoleCatalog struct {
	byName map[string]model.TeamRole
}

// NewRoleCatalog builds a catalog from the team role snapshot
func NewRoleCatalog(roles []model.TeamRole) *RoleCatalog {
	byName := make(map[string]model.TeamRole, len(roles))
	for _, r := range roles {
		byName[r.Name] = r
	}
	return &RoleCatalog{byName: byName}
}

// SpecialistRoles returns the names of all roles flagged as specialist
func (c *RoleCatalog) SpecialistRoles() []string {
	var names []string
	for _, r := range c.byName {
		if r.IsSpecialist {
			names = append(names, r.Name)
		}
	}
	return names
}

// IsSpecialist reports whether the role name is configured as specialist.
// Unknown role names are not specialists.
func (c *RoleCatalog) IsSpecialist(roleName string) bool {
	r, ok := c.byName[roleName]
	return ok && r.IsSpecialist
}

// CanDoForegroundDuty reports whether the role may take foreground services.
// Unconfigured roles may: only an explicit false disables a role.
func (c *RoleCatalog) CanDoForegroundDuty(roleName string) bool {
	r, ok := c.byName[roleName]
	if !ok || r.CanDoForegroundDuty == nil {
		return true
	}
	return *r.CanDoForegroundDuty
}

// CanDoBackgroundDuty reports whether the role may take background services.
// Rows without the column fall back to the specialist flag; unknown role
// names may not.
func (c *RoleCatalog) CanDoBackgroundDuty(roleName string) bool {
	r, ok := c.byName[roleName]
	if !ok {
		return false
	}
	if r.CanDoBackgroundDuty != nil {
		return *r.CanDoBackgroundDuty
	}
	return r.IsSpecialist
}

// IsExcludedFromStatistics reports whether the role is left out of presence
// and workload statistics
func (c *RoleCatalog) IsExcludedFromStatistics(roleName string) bool {
	if r, ok := c.byName[roleName]; ok && r.ExcludedFromStatistics != nil {
		return *r.ExcludedFromStatistics
	}
	return roleName == legacyNonRadiologistRole
}
