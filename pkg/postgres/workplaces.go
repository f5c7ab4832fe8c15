package postgres

import (
	"context"
	"fmt"

	"github.com/avoelker/radplan/pkg/db"
)

// GetWorkplaces retrieves all workplace records
func (d *DB) GetWorkplaces(ctx context.Context) ([]db.Workplace, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, category, allows_rotation_concurrently, allows_consecutive_days,
		       auto_off, affects_availability, timeslots_enabled,
		       default_overlap_tolerance_min, display_order
		FROM workplace
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workplaces: %w", err)
	}
	defer rows.Close()

	var workplaces []db.Workplace
	for rows.Next() {
		var w db.Workplace
		if err := rows.Scan(&w.ID, &w.Name, &w.Category, &w.AllowsRotationConcurrently,
			&w.AllowsConsecutiveDays, &w.AutoOff, &w.AffectsAvailability,
			&w.TimeslotsEnabled, &w.DefaultOverlapToleranceMin, &w.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan workplace: %w", err)
		}
		workplaces = append(workplaces, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workplaces: %w", err)
	}

	return workplaces, nil
}

// GetTimeslots retrieves all timeslot records
func (d *DB) GetTimeslots(ctx context.Context) ([]db.Timeslot, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, workplace_id, to_char(start_time, 'HH24:MI:SS'),
		       to_char(end_time, 'HH24:MI:SS'), label, overlap_tolerance_min
		FROM timeslot
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeslots: %w", err)
	}
	defer rows.Close()

	var timeslots []db.Timeslot
	for rows.Next() {
		var ts db.Timeslot
		if err := rows.Scan(&ts.ID, &ts.WorkplaceID, &ts.StartTime, &ts.EndTime,
			&ts.Label, &ts.OverlapToleranceMin); err != nil {
			return nil, fmt.Errorf("failed to scan timeslot: %w", err)
		}
		timeslots = append(timeslots, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timeslots: %w", err)
	}

	return timeslots, nil
}
