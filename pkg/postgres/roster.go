package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/avoelker/radplan/pkg/db"
)

// GetDoctors retrieves all doctor records
func (d *DB) GetDoctors(ctx context.Context) ([]db.Doctor, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, role, fte, contract_end_date, exclude_from_staffing_plan
		FROM doctor
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []db.Doctor
	for rows.Next() {
		var doc db.Doctor
		var contractEnd *time.Time
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Role, &doc.FTE, &contractEnd, &doc.ExcludeFromStaffingPlan); err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		if contractEnd != nil {
			doc.ContractEndDate = contractEnd.Format("2006-01-02")
		}
		doctors = append(doctors, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctors: %w", err)
	}

	return doctors, nil
}

// GetTeamRoles retrieves all team role records
func (d *DB) GetTeamRoles(ctx context.Context) ([]db.TeamRole, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT name, is_specialist, can_do_foreground_duty, can_do_background_duty,
		       excluded_from_statistics, priority
		FROM team_role
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query team roles: %w", err)
	}
	defer rows.Close()

	var roles []db.TeamRole
	for rows.Next() {
		var role db.TeamRole
		if err := rows.Scan(&role.Name, &role.IsSpecialist, &role.CanDoForegroundDuty,
			&role.CanDoBackgroundDuty, &role.ExcludedFromStatistics, &role.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan team role: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team roles: %w", err)
	}

	return roles, nil
}
