package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/avoelker/radplan/pkg/db"
)

// GetWishRequests retrieves all wish request records
func (d *DB) GetWishRequests(ctx context.Context) ([]db.WishRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, doctor_id, date, type, position, status
		FROM wish_request
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query wish requests: %w", err)
	}
	defer rows.Close()

	var wishes []db.WishRequest
	for rows.Next() {
		var w db.WishRequest
		var date time.Time
		if err := rows.Scan(&w.ID, &w.DoctorID, &date, &w.Type, &w.Position, &w.Status); err != nil {
			return nil, fmt.Errorf("failed to scan wish request: %w", err)
		}
		w.Date = date.Format("2006-01-02")
		wishes = append(wishes, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wish requests: %w", err)
	}

	return wishes, nil
}

// UpdateWishStatusChecked advances a wish only from the expected status.
// db.ErrConflict signals that someone else already decided the wish.
func (d *DB) UpdateWishStatusChecked(ctx context.Context, id, expectedStatus, newStatus string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE wish_request SET status = $3 WHERE id = $1 AND status = $2
	`, id, expectedStatus, newStatus)
	if err != nil {
		return fmt.Errorf("failed to update wish request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrConflict
	}
	return nil
}
