package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoelker/radplan/pkg/db"
)

func ptr[T any](v T) *T { return &v }

func newMockDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewDBWithPool(mock), mock
}

func TestGetShiftEntries_ScansDatesAndNullableTimeslot(t *testing.T) {
	store, mock := newMockDB(t)

	rows := pgxmock.NewRows([]string{"id", "date", "doctor_id", "position", "timeslot_id", "note"}).
		AddRow("s1", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), "d1", "Dienst Vordergrund", nil, "").
		AddRow("s2", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), "d1", "Mammographie", ptr("t1"), "Autom. Freizeitausgleich")
	mock.ExpectQuery("SELECT id, date, doctor_id, position, timeslot_id, note").
		WillReturnRows(rows)

	entries, err := store.GetShiftEntries(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-03-11", entries[0].Date)
	assert.Empty(t, entries[0].TimeslotID)
	assert.Equal(t, "t1", entries[1].TimeslotID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDoctors_NullableContractEnd(t *testing.T) {
	store, mock := newMockDB(t)

	contractEnd := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "name", "role", "fte", "contract_end_date", "exclude_from_staffing_plan"}).
		AddRow("d1", "Dr. Sommer", "Facharzt", 1.0, nil, false).
		AddRow("d2", "Dr. Winter", "Assistenzarzt", 0.75, &contractEnd, true)
	mock.ExpectQuery("SELECT id, name, role, fte, contract_end_date, exclude_from_staffing_plan").
		WillReturnRows(rows)

	doctors, err := store.GetDoctors(context.Background())

	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Empty(t, doctors[0].ContractEndDate)
	assert.Equal(t, "2025-12-31", doctors[1].ContractEndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTeamRoles_TriStateColumns(t *testing.T) {
	store, mock := newMockDB(t)

	rows := pgxmock.NewRows([]string{"name", "is_specialist", "can_do_foreground_duty",
		"can_do_background_duty", "excluded_from_statistics", "priority"}).
		AddRow("Facharzt", true, nil, nil, nil, 1).
		AddRow("Nicht-Radiologe", false, ptr(false), nil, nil, 9)
	mock.ExpectQuery("SELECT name, is_specialist, can_do_foreground_duty").
		WillReturnRows(rows)

	roles, err := store.GetTeamRoles(context.Background())

	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Nil(t, roles[0].CanDoForegroundDuty)
	require.NotNil(t, roles[1].CanDoForegroundDuty)
	assert.False(t, *roles[1].CanDoForegroundDuty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertShiftEntry_EmptyTimeslotStoredAsNull(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO shift_entry").
		WithArgs("s1", "2024-03-11", "d1", "Urlaub", (*string)(nil), "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.InsertShiftEntry(context.Background(), &db.ShiftEntry{
		ID: "s1", Date: "2024-03-11", DoctorID: "d1", Position: "Urlaub",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteShiftEntry_MissingRowIsNotFound(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec("DELETE FROM shift_entry").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := store.DeleteShiftEntry(context.Background(), "missing")

	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestUpdateShiftPositionChecked_Conflict(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec("UPDATE shift_entry SET position").
		WithArgs("s1", "Urlaub", "Krank").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := store.UpdateShiftPositionChecked(context.Background(), "s1", "Urlaub", "Krank")

	assert.ErrorIs(t, err, db.ErrConflict)
}

func TestUpdateShiftPositionChecked_Success(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec("UPDATE shift_entry SET position").
		WithArgs("s1", "Urlaub", "Krank").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := store.UpdateShiftPositionChecked(context.Background(), "s1", "Urlaub", "Krank")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWishStatusChecked_Conflict(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec("UPDATE wish_request SET status").
		WithArgs("w1", "pending", "approved").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := store.UpdateWishStatusChecked(context.Background(), "w1", "pending", "approved")

	assert.ErrorIs(t, err, db.ErrConflict)
}
