package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/avoelker/radplan/pkg/db"
)

// GetShiftEntries retrieves all shift entry records
func (d *DB) GetShiftEntries(ctx context.Context) ([]db.ShiftEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, date, doctor_id, position, timeslot_id, note
		FROM shift_entry
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift entries: %w", err)
	}
	defer rows.Close()

	var entries []db.ShiftEntry
	for rows.Next() {
		var e db.ShiftEntry
		var date time.Time
		var timeslotID *string
		if err := rows.Scan(&e.ID, &date, &e.DoctorID, &e.Position, &timeslotID, &e.Note); err != nil {
			return nil, fmt.Errorf("failed to scan shift entry: %w", err)
		}
		e.Date = date.Format("2006-01-02")
		if timeslotID != nil {
			e.TimeslotID = *timeslotID
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift entries: %w", err)
	}

	return entries, nil
}

// InsertShiftEntry inserts a new shift entry
func (d *DB) InsertShiftEntry(ctx context.Context, entry *db.ShiftEntry) error {
	var timeslotID *string
	if entry.TimeslotID != "" {
		timeslotID = &entry.TimeslotID
	}
	_, err := d.pool.Exec(ctx, `
		INSERT INTO shift_entry (id, date, doctor_id, position, timeslot_id, note)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ID, entry.Date, entry.DoctorID, entry.Position, timeslotID, entry.Note)
	if err != nil {
		return fmt.Errorf("failed to insert shift entry: %w", err)
	}
	return nil
}

// DeleteShiftEntry removes a shift entry by id
func (d *DB) DeleteShiftEntry(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM shift_entry WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// UpdateShiftPositionChecked moves a shift to a new position only if it
// still holds the expected one. db.ErrConflict signals a concurrent change;
// the caller re-reads and re-validates.
func (d *DB) UpdateShiftPositionChecked(ctx context.Context, id, expectedPosition, newPosition string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shift_entry SET position = $3 WHERE id = $1 AND position = $2
	`, id, expectedPosition, newPosition)
	if err != nil {
		return fmt.Errorf("failed to update shift entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrConflict
	}
	return nil
}
