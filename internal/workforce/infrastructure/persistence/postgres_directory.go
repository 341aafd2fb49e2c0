// Package persistence contains data store adapters for the workforce read
// models.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
	"github.com/luminahr/talentscope/internal/workforce/domain"
)

// PostgresDirectory implements domain.Directory using PostgreSQL.
type PostgresDirectory struct {
	conn database.Connection
}

// NewPostgresDirectory creates a new PostgreSQL employee directory.
func NewPostgresDirectory(conn database.Connection) *PostgresDirectory {
	return &PostgresDirectory{conn: conn}
}

// GetEmployee retrieves an employee by ID within an organization.
func (d *PostgresDirectory) GetEmployee(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.Employee, error) {
	query := `
		SELECT id, organization_id, name, role, department, skills, active
		FROM employees
		WHERE id = $1 AND organization_id = $2
	`

	exec := database.ExecutorFromContext(ctx, d.conn)
	emp, err := scanEmployee(exec.QueryRow(ctx, query, employeeID, orgID))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

// ListActiveEmployees retrieves active employees of an organization.
func (d *PostgresDirectory) ListActiveEmployees(ctx context.Context, orgID uuid.UUID, department string) ([]*domain.Employee, error) {
	query := `
		SELECT id, organization_id, name, role, department, skills, active
		FROM employees
		WHERE organization_id = $1 AND active
		  AND ($2 = '' OR department = $2)
		ORDER BY name
	`

	exec := database.ExecutorFromContext(ctx, d.conn)
	rows, err := exec.Query(ctx, query, orgID, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func scanEmployee(row database.Row) (*domain.Employee, error) {
	var emp domain.Employee
	var skills []byte
	if err := row.Scan(&emp.ID, &emp.OrganizationID, &emp.Name, &emp.Role, &emp.Department, &skills, &emp.Active); err != nil {
		return nil, err
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &emp.Skills); err != nil {
			return nil, fmt.Errorf("decode skills: %w", err)
		}
	}
	return &emp, nil
}
