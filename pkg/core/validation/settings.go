package validation

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/avoelker/radplan/pkg/core/model"
)

// Setting keys read by the validation core
const (
	settingAbsenceBlockingRules = "absence_blocking_rules"
	settingLimitForeServices    = "limit_fore_services"
	settingLimitBackServices    = "limit_back_services"
	settingLimitWeekendServices = "limit_weekend_services"
	settingMinSpecialists       = "min_present_specialists"
	settingMinAssistants        = "min_present_assistants"
)

// ServiceLimits bounds the number of services a full-time doctor may take
// within one calendar month (weekend counts foreground services on Sat/Sun)
type ServiceLimits struct {
	Foreground int
	Background int
	Weekend    int
}

// StaffingMinimums is the minimum headcount that must remain present per day
type StaffingMinimums struct {
	Specialists int
	Assistants  int
}

// DefaultAbsenceBlockingRules returns the rule set used when the setting is
// absent or unparseable. True means the absence blocks further assignments
// on that day, false means it only warns.
func DefaultAbsenceBlockingRules() map[string]bool {
	return map[string]bool{
		model.AbsenceUrlaub:       true,
		model.AbsenceKrank:        true,
		model.AbsenceFrei:         true,
		model.AbsenceDienstreise:  false,
		model.AbsenceNotAvailable: false,
	}
}

// ParseAbsenceBlockingRules extracts the absence-blocking rule map from the
// settings snapshot. Malformed JSON degrades to the defaults, never errors.
func ParseAbsenceBlockingRules(settings []model.SystemSetting) map[string]bool {
	raw, ok := settingValue(settings, settingAbsenceBlockingRules)
	if !ok {
		return DefaultAbsenceBlockingRules()
	}

	var rules map[string]bool
	if err := json.Unmarshal([]byte(raw), &rules); err != nil || rules == nil {
		return DefaultAbsenceBlockingRules()
	}
	return rules
}

// ParseServiceLimits extracts the monthly service limits, falling back to
// 4 foreground / 12 background / 1 weekend per full-time doctor.
func ParseServiceLimits(settings []model.SystemSetting) ServiceLimits {
	return ServiceLimits{
		Foreground: intSetting(settings, settingLimitForeServices, 4),
		Background: intSetting(settings, settingLimitBackServices, 12),
		Weekend:    intSetting(settings, settingLimitWeekendServices, 1),
	}
}

// ParseStaffingMinimums extracts the daily presence minimums, falling back
// to 2 specialists / 3 assistants.
func ParseStaffingMinimums(settings []model.SystemSetting) StaffingMinimums {
	return StaffingMinimums{
		Specialists: intSetting(settings, settingMinSpecialists, 2),
		Assistants:  intSetting(settings, settingMinAssistants, 3),
	}
}

func settingValue(settings []model.SystemSetting, key string) (string, bool) {
	for _, s := range settings {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

func intSetting(settings []model.SystemSetting, key string, fallback int) int {
	raw, ok := settingValue(settings, key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}
