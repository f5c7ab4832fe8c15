package postgres

import (
	"context"
	"fmt"

	"github.com/avoelker/radplan/pkg/db"
)

// GetSystemSettings retrieves all key/value settings records
func (d *DB) GetSystemSettings(ctx context.Context) ([]db.SystemSetting, error) {
	rows, err := d.pool.Query(ctx, `SELECT key, value FROM system_setting`)
	if err != nil {
		return nil, fmt.Errorf("failed to query system settings: %w", err)
	}
	defer rows.Close()

	var settings []db.SystemSetting
	for rows.Next() {
		var s db.SystemSetting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, fmt.Errorf("failed to scan system setting: %w", err)
		}
		settings = append(settings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating system settings: %w", err)
	}

	return settings, nil
}

// GetStaffingPlanEntries retrieves all staffing plan records
func (d *DB) GetStaffingPlanEntries(ctx context.Context) ([]db.StaffingPlanEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT doctor_id, year, month, value
		FROM staffing_plan_entry
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staffing plan entries: %w", err)
	}
	defer rows.Close()

	var entries []db.StaffingPlanEntry
	for rows.Next() {
		var e db.StaffingPlanEntry
		if err := rows.Scan(&e.DoctorID, &e.Year, &e.Month, &e.Value); err != nil {
			return nil, fmt.Errorf("failed to scan staffing plan entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staffing plan entries: %w", err)
	}

	return entries, nil
}
