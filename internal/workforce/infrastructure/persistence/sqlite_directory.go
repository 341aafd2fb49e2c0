package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
	"github.com/luminahr/talentscope/internal/workforce/domain"
)

// SQLiteDirectory implements domain.Directory using SQLite.
type SQLiteDirectory struct {
	conn database.Connection
}

// NewSQLiteDirectory creates a new SQLite employee directory.
func NewSQLiteDirectory(conn database.Connection) *SQLiteDirectory {
	return &SQLiteDirectory{conn: conn}
}

// GetEmployee retrieves an employee by ID within an organization.
func (d *SQLiteDirectory) GetEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.Employee, error) {
	query := `
		SELECT id, organization_id, name, role, department, skills, active
		FROM employees
		WHERE id = ? AND organization_id = ?
	`

	exec := database.ExecutorFromContext(ctx, d.conn)
	emp, err := scanSQLiteEmployee(exec.QueryRow(ctx, query, employeeID.String(), orgID.String()))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

// ListActiveEmployees retrieves active employees of an organization.
func (d *SQLiteDirectory) ListActiveEmployees(ctx context.Context, orgID uuid.UUID, department string) ([]*domain.Employee, error) {
	query := `
		SELECT id, organization_id, name, role, department, skills, active
		FROM employees
		WHERE organization_id = ? AND active = 1
		  AND (? = '' OR department = ?)
		ORDER BY name
	`

	exec := database.ExecutorFromContext(ctx, d.conn)
	rows, err := exec.Query(ctx, query, orgID.String(), department, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		emp, err := scanSQLiteEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func scanSQLiteEmployee(row database.Row) (*domain.Employee, error) {
	var emp domain.Employee
	var id, orgID, skills string
	if err := row.Scan(&id, &orgID, &emp.Name, &emp.Role, &emp.Department, &skills, &emp.Active); err != nil {
		return nil, err
	}

	var err error
	if emp.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse employee id: %w", err)
	}
	if emp.OrganizationID, err = uuid.Parse(orgID); err != nil {
		return nil, fmt.Errorf("parse organization id: %w", err)
	}
	if skills != "" {
		if err := json.Unmarshal([]byte(skills), &emp.Skills); err != nil {
			return nil, fmt.Errorf("decode skills: %w", err)
		}
	}
	return &emp, nil
}
