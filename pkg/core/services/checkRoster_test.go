package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avoelker/radplan/pkg/db"
)

func TestCheckRoster_CleanMonth(t *testing.T) {
	store := departmentStore()
	store.shifts = []db.ShiftEntry{
		{ID: "s1", Date: "2024-03-11", DoctorID: "d1", Position: "CT"},
		{ID: "s2", Date: "2024-03-12", DoctorID: "d2", Position: "CT"},
	}

	result, err := CheckRoster(context.Background(), store, zap.NewNop(), "2024-03", false)

	require.NoError(t, err)
	assert.Equal(t, 2, result.ShiftsTotal)
	assert.Empty(t, result.Issues)
}

func TestCheckRoster_ReportsLimitBreaches(t *testing.T) {
	store := departmentStore()
	// Five foreground services against a default limit of four
	store.shifts = []db.ShiftEntry{
		{ID: "s1", Date: "2024-03-04", DoctorID: "d1", Position: "Dienst Vordergrund"},
		{ID: "s2", Date: "2024-03-07", DoctorID: "d1", Position: "Dienst Vordergrund"},
		{ID: "s3", Date: "2024-03-11", DoctorID: "d1", Position: "Dienst Vordergrund"},
		{ID: "s4", Date: "2024-03-14", DoctorID: "d1", Position: "Dienst Vordergrund"},
		{ID: "s5", Date: "2024-03-18", DoctorID: "d1", Position: "Dienst Vordergrund"},
	}

	result, err := CheckRoster(context.Background(), store, zap.NewNop(), "2024-03", false)

	require.NoError(t, err)
	assert.Equal(t, 5, result.ShiftsTotal)
	assert.NotEmpty(t, result.Issues)
	assert.Zero(t, result.BlockerCount)
	assert.Positive(t, result.WarningCount)
}

func TestCheckRoster_SkipLimitsSilencesLimitWarnings(t *testing.T) {
	store := departmentStore()
	store.shifts = []db.ShiftEntry{
		{ID: "s1", Date: "2024-03-04", DoctorID: "d1", Position: "Dienst Vordergrund"},
		{ID: "s2", Date: "2024-03-07", DoctorID: "d1", Position: "Dienst Vordergrund"},
		{ID: "s3", Date: "2024-03-11", DoctorID: "d1", Position: "Dienst Vordergrund"},
		{ID: "s4", Date: "2024-03-14", DoctorID: "d1", Position: "Dienst Vordergrund"},
		{ID: "s5", Date: "2024-03-18", DoctorID: "d1", Position: "Dienst Vordergrund"},
	}

	result, err := CheckRoster(context.Background(), store, zap.NewNop(), "2024-03", true)

	require.NoError(t, err)
	assert.Empty(t, result.Issues)
}

func TestCheckRoster_OtherMonthsIgnored(t *testing.T) {
	store := departmentStore()
	store.shifts = []db.ShiftEntry{
		{ID: "s1", Date: "2024-02-28", DoctorID: "d1", Position: "CT"},
		{ID: "s2", Date: "2024-03-11", DoctorID: "d1", Position: "CT"},
	}

	result, err := CheckRoster(context.Background(), store, zap.NewNop(), "2024-03", false)

	require.NoError(t, err)
	assert.Equal(t, 1, result.ShiftsTotal)
}

func TestCheckRoster_RejectsMalformedMonth(t *testing.T) {
	store := departmentStore()

	_, err := CheckRoster(context.Background(), store, zap.NewNop(), "März 2024", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected yyyy-MM")
}

func TestCheckRoster_SelfExclusionKeepsExistingPlanValid(t *testing.T) {
	store := departmentStore()
	// A vacation day alone must not conflict with itself
	store.shifts = []db.ShiftEntry{
		{ID: "s1", Date: "2024-03-11", DoctorID: "d1", Position: "Urlaub"},
	}
	store.settings = []db.SystemSetting{
		{Key: "min_present_specialists", Value: "0"},
		{Key: "min_present_assistants", Value: "0"},
	}

	result, err := CheckRoster(context.Background(), store, zap.NewNop(), "2024-03", false)

	require.NoError(t, err)
	assert.Empty(t, result.Issues)
}
