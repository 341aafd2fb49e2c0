package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
	"github.com/luminahr/talentscope/internal/workforce/domain"
)

// PostgresTaskSource implements domain.TaskSource using PostgreSQL.
type PostgresTaskSource struct {
	conn database.Connection
}

// NewPostgresTaskSource creates a new PostgreSQL task source.
func NewPostgresTaskSource(conn database.Connection) *PostgresTaskSource {
	return &PostgresTaskSource{conn: conn}
}

// ListByEmployee retrieves all tasks ever assigned to the employee.
func (s *PostgresTaskSource) ListByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT id, organization_id, assignee_id, status, complexity, created_at, completed_at
		FROM tasks
		WHERE organization_id = $1 AND assignee_id = $2
		ORDER BY created_at
	`
	return s.queryTasks(ctx, query, orgID, employeeID)
}

// CountActive returns the number of assigned or in-progress tasks.
func (s *PostgresTaskSource) CountActive(ctx context.Context, orgID, employeeID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE organization_id = $1 AND assignee_id = $2
		  AND status IN ('assigned', 'in_progress')
	`

	var count int
	exec := database.ExecutorFromContext(ctx, s.conn)
	if err := exec.QueryRow(ctx, query, orgID, employeeID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountCompletedSince returns tasks completed at or after the given instant.
func (s *PostgresTaskSource) CountCompletedSince(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE organization_id = $1 AND assignee_id = $2
		  AND status = 'completed' AND completed_at >= $3
	`

	var count int
	exec := database.ExecutorFromContext(ctx, s.conn)
	if err := exec.QueryRow(ctx, query, orgID, employeeID, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// WindowStats aggregates statistics over tasks created at or after the given
// instant.
func (s *PostgresTaskSource) WindowStats(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) (domain.TaskStats, error) {
	query := `
		SELECT id, organization_id, assignee_id, status, complexity, created_at, completed_at
		FROM tasks
		WHERE organization_id = $1 AND assignee_id = $2 AND created_at >= $3
		ORDER BY created_at
	`

	tasks, err := s.queryTasks(ctx, query, orgID, employeeID, since)
	if err != nil {
		return domain.TaskStats{}, err
	}
	return domain.AggregateStats(tasks), nil
}

func (s *PostgresTaskSource) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	exec := database.ExecutorFromContext(ctx, s.conn)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.OrganizationID, &t.AssigneeID, &t.Status, &t.Complexity, &t.CreatedAt, &t.CompletedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
