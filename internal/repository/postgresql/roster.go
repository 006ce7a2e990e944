package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/holiday"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/roster"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
)

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepositoryImpl{db: db}
}

// ListByPlantMonth implements roster.RosterRepository.
func (r *rosterRepositoryImpl) ListByPlantMonth(ctx context.Context, plantID int64, year, month int) ([]roster.Roster, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ro.id, ro.plant_id, ro.date, ro.shift, ro.supervisor_id,
			   COALESCE(ARRAY_AGG(rl.laborer_id ORDER BY rl.laborer_id) FILTER (WHERE rl.laborer_id IS NOT NULL), '{}')
		FROM rosters ro
		LEFT JOIN roster_laborers rl ON rl.roster_id = ro.id
		WHERE ro.plant_id = $1
		  AND EXTRACT(YEAR FROM ro.date) = $2
		  AND EXTRACT(MONTH FROM ro.date) = $3
		GROUP BY ro.id
		ORDER BY ro.date, ro.shift
	`

	rows, err := q.Query(ctx, query, plantID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list rosters: %w", err)
	}
	defer rows.Close()

	var rosters []roster.Roster
	for rows.Next() {
		var ro roster.Roster
		if err := rows.Scan(&ro.ID, &ro.PlantID, &ro.Date, &ro.Shift, &ro.SupervisorID, &ro.LaborerIDs); err != nil {
			return nil, err
		}
		rosters = append(rosters, ro)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rosters, nil
}

// FindID implements roster.RosterRepository.
func (r *rosterRepositoryImpl) FindID(ctx context.Context, plantID int64, date time.Time, shift attendance.Shift) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM rosters WHERE plant_id = $1 AND date = $2 AND shift = $3`

	var id int64
	if err := q.QueryRow(ctx, query, plantID, date, shift).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, roster.ErrRosterNotFound
		}
		return 0, fmt.Errorf("failed to find roster: %w", err)
	}
	return id, nil
}

// Create implements roster.RosterRepository.
func (r *rosterRepositoryImpl) Create(ctx context.Context, ro roster.Roster) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rosters (plant_id, date, shift, supervisor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, ro.PlantID, ro.Date, ro.Shift, ro.SupervisorID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create roster: %w", err)
	}
	return id, nil
}

// UpdateSupervisor implements roster.RosterRepository.
func (r *rosterRepositoryImpl) UpdateSupervisor(ctx context.Context, rosterID int64, supervisorID *int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE rosters SET supervisor_id = $1 WHERE id = $2`, supervisorID, rosterID)
	if err != nil {
		return fmt.Errorf("failed to update roster supervisor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrRosterNotFound
	}
	return nil
}

// ReplaceLaborers implements roster.RosterRepository.
func (r *rosterRepositoryImpl) ReplaceLaborers(ctx context.Context, rosterID int64, laborerIDs []int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM roster_laborers WHERE roster_id = $1`, rosterID); err != nil {
		return fmt.Errorf("failed to clear roster laborers: %w", err)
	}
	if len(laborerIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO roster_laborers (roster_id, laborer_id)
		SELECT $1, UNNEST($2::bigint[])
	`
	if _, err := q.Exec(ctx, query, rosterID, laborerIDs); err != nil {
		return fmt.Errorf("failed to add roster laborers: %w", err)
	}
	return nil
}

// ListAssignments implements roster.RosterRepository.
func (r *rosterRepositoryImpl) ListAssignments(ctx context.Context, filter roster.AssignmentFilter) ([]roster.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH slots AS (
			SELECT ro.id, ro.plant_id, ro.date, ro.shift, ro.supervisor_id,
				   ro.supervisor_id AS employee_id, $5::text AS role
			FROM rosters ro
			WHERE ro.supervisor_id IS NOT NULL
			UNION ALL
			SELECT ro.id, ro.plant_id, ro.date, ro.shift, ro.supervisor_id,
				   rl.laborer_id, $6::text
			FROM rosters ro
			JOIN roster_laborers rl ON rl.roster_id = ro.id
		)
		SELECT p.name, s.date, s.shift, s.supervisor_id, s.employee_id, e.name, s.role,
			   EXISTS (SELECT 1 FROM holidays h WHERE h.date = s.date AND h.type = $7)
		FROM slots s
		JOIN employees e ON e.id = s.employee_id
		JOIN power_plants p ON p.id = s.plant_id
		WHERE s.plant_id = $1
		  AND s.date >= $2
		  AND ($3::date IS NULL OR s.date <= $3)
		  AND ($4::text IS NULL OR s.shift = $4)
		ORDER BY s.date, s.shift, s.role DESC, s.employee_id
	`

	rows, err := q.Query(ctx, query,
		filter.PlantID, filter.From, filter.To, filter.Shift,
		employee.RoleSupervisor, employee.RoleLaborer, holiday.HolidayTypePublic,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster assignments: %w", err)
	}
	defer rows.Close()

	var assignments []roster.Assignment
	for rows.Next() {
		var a roster.Assignment
		err := rows.Scan(&a.PlantName, &a.Date, &a.Shift, &a.SupervisorID, &a.EmployeeID, &a.EmployeeName, &a.Role, &a.IsPublicHoliday)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// ListLaborerShifts implements roster.RosterRepository.
func (r *rosterRepositoryImpl) ListLaborerShifts(ctx context.Context, plantID int64, year, month int) ([]roster.LaborerShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.emp_no, ro.shift
		FROM rosters ro
		JOIN roster_laborers rl ON rl.roster_id = ro.id
		JOIN employees e ON e.id = rl.laborer_id
		WHERE ro.plant_id = $1
		  AND EXTRACT(YEAR FROM ro.date) = $2
		  AND EXTRACT(MONTH FROM ro.date) = $3
		ORDER BY e.name, e.id, ro.date
	`

	rows, err := q.Query(ctx, query, plantID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list laborer shifts: %w", err)
	}
	defer rows.Close()

	var shifts []roster.LaborerShift
	for rows.Next() {
		var ls roster.LaborerShift
		if err := rows.Scan(&ls.EmployeeID, &ls.Name, &ls.EmpNo, &ls.Shift); err != nil {
			return nil, err
		}
		shifts = append(shifts, ls)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}
