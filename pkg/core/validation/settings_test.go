package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avoelker/radplan/pkg/core/model"
)

func TestParseAbsenceBlockingRules_Defaults(t *testing.T) {
	rules := ParseAbsenceBlockingRules(nil)

	assert.True(t, rules[model.AbsenceUrlaub])
	assert.True(t, rules[model.AbsenceKrank])
	assert.True(t, rules[model.AbsenceFrei])
	assert.False(t, rules[model.AbsenceDienstreise])
	assert.False(t, rules[model.AbsenceNotAvailable])
}

func TestParseAbsenceBlockingRules_MalformedJSONDegradesToDefaults(t *testing.T) {
	settings := []model.SystemSetting{
		{Key: "absence_blocking_rules", Value: "{not json"},
	}

	rules := ParseAbsenceBlockingRules(settings)
	assert.Equal(t, DefaultAbsenceBlockingRules(), rules)
}

func TestParseAbsenceBlockingRules_CustomRules(t *testing.T) {
	settings := []model.SystemSetting{
		{Key: "absence_blocking_rules", Value: `{"Urlaub":false,"Fortbildung":true}`},
	}

	rules := ParseAbsenceBlockingRules(settings)
	assert.False(t, rules["Urlaub"])
	assert.True(t, rules["Fortbildung"])
	// Custom rules replace the defaults entirely
	_, ok := rules["Krank"]
	assert.False(t, ok)
}

func TestParseServiceLimits_Defaults(t *testing.T) {
	limits := ParseServiceLimits(nil)

	assert.Equal(t, 4, limits.Foreground)
	assert.Equal(t, 12, limits.Background)
	assert.Equal(t, 1, limits.Weekend)
}

func TestParseServiceLimits_ConfiguredValues(t *testing.T) {
	settings := []model.SystemSetting{
		{Key: "limit_fore_services", Value: "6"},
		{Key: "limit_back_services", Value: " 10 "},
		{Key: "limit_weekend_services", Value: "2"},
	}

	limits := ParseServiceLimits(settings)
	assert.Equal(t, 6, limits.Foreground)
	assert.Equal(t, 10, limits.Background)
	assert.Equal(t, 2, limits.Weekend)
}

func TestParseServiceLimits_UnparseableFallsBack(t *testing.T) {
	settings := []model.SystemSetting{
		{Key: "limit_fore_services", Value: "viele"},
	}

	limits := ParseServiceLimits(settings)
	assert.Equal(t, 4, limits.Foreground)
}

func TestParseStaffingMinimums_Defaults(t *testing.T) {
	minimums := ParseStaffingMinimums(nil)

	assert.Equal(t, 2, minimums.Specialists)
	assert.Equal(t, 3, minimums.Assistants)
}

func TestParseStaffingMinimums_Configured(t *testing.T) {
	settings := []model.SystemSetting{
		{Key: "min_present_specialists", Value: "1"},
		{Key: "min_present_assistants", Value: "4"},
	}

	minimums := ParseStaffingMinimums(settings)
	assert.Equal(t, 1, minimums.Specialists)
	assert.Equal(t, 4, minimums.Assistants)
}
