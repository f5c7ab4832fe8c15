package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avoelker/radplan/pkg/core/model"
)

func boolPtr(b bool) *bool { return &b }

func TestRoleCatalog_SpecialistRoles(t *testing.T) {
	catalog := NewRoleCatalog([]model.TeamRole{
		{Name: "Facharzt", IsSpecialist: true},
		{Name: "Oberarzt", IsSpecialist: true},
		{Name: "Assistenzarzt", IsSpecialist: false},
	})

	assert.ElementsMatch(t, []string{"Facharzt", "Oberarzt"}, catalog.SpecialistRoles())
	assert.True(t, catalog.IsSpecialist("Facharzt"))
	assert.False(t, catalog.IsSpecialist("Assistenzarzt"))
	assert.False(t, catalog.IsSpecialist("Unbekannt"))
}

func TestRoleCatalog_ForegroundDuty_PermissiveDefault(t *testing.T) {
	catalog := NewRoleCatalog([]model.TeamRole{
		{Name: "Assistenzarzt"}, // row predates the column
		{Name: "Nicht-Radiologe", CanDoForegroundDuty: boolPtr(false)},
	})

	assert.True(t, catalog.CanDoForegroundDuty("Assistenzarzt"))
	assert.False(t, catalog.CanDoForegroundDuty("Nicht-Radiologe"))
	// Roles missing from the catalog may work foreground
	assert.True(t, catalog.CanDoForegroundDuty("Gastarzt"))
}

func TestRoleCatalog_BackgroundDuty_FallsBackToSpecialistFlag(t *testing.T) {
	catalog := NewRoleCatalog([]model.TeamRole{
		{Name: "Facharzt", IsSpecialist: true},
		{Name: "Assistenzarzt", IsSpecialist: false},
		{Name: "Weiterbildungsassistent", IsSpecialist: false, CanDoBackgroundDuty: boolPtr(true)},
	})

	assert.True(t, catalog.CanDoBackgroundDuty("Facharzt"))
	assert.False(t, catalog.CanDoBackgroundDuty("Assistenzarzt"))
	assert.True(t, catalog.CanDoBackgroundDuty("Weiterbildungsassistent"))
	// Unknown roles may not work background
	assert.False(t, catalog.CanDoBackgroundDuty("Gastarzt"))
}

func TestRoleCatalog_ExcludedFromStatistics(t *testing.T) {
	catalog := NewRoleCatalog([]model.TeamRole{
		{Name: "MTA", ExcludedFromStatistics: boolPtr(true)},
		{Name: "Nicht-Radiologe"}, // row predates the column
		{Name: "Facharzt"},
	})

	assert.True(t, catalog.IsExcludedFromStatistics("MTA"))
	// Legacy sentinel still applies when the column is unset
	assert.True(t, catalog.IsExcludedFromStatistics("Nicht-Radiologe"))
	assert.False(t, catalog.IsExcludedFromStatistics("Facharzt"))
	assert.False(t, catalog.IsExcludedFromStatistics("Gastarzt"))
}

func TestRoleCatalog_ExplicitFieldWinsOverSentinel(t *testing.T) {
	catalog := NewRoleCatalog([]model.TeamRole{
		{Name: "Nicht-Radiologe", ExcludedFromStatistics: boolPtr(false)},
	})

	assert.False(t, catalog.IsExcludedFromStatistics("Nicht-Radiologe"))
}
