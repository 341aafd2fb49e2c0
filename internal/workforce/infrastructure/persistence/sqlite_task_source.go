package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
	"github.com/luminahr/talentscope/internal/workforce/domain"
)

// SQLiteTaskSource implements domain.TaskSource using SQLite.
// Timestamps are stored as RFC3339 strings.
type SQLiteTaskSource struct {
	conn database.Connection
}

// NewSQLiteTaskSource creates a new SQLite task source.
func NewSQLiteTaskSource(conn database.Connection) *SQLiteTaskSource {
	return &SQLiteTaskSource{conn: conn}
}

// ListByEmployee retrieves all tasks ever assigned to the employee.
func (s *SQLiteTaskSource) ListByEmployee(ctx context.Context, orgID, employeeID uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT id, organization_id, assignee_id, status, complexity, created_at, completed_at
		FROM tasks
		WHERE organization_id = ? AND assignee_id = ?
		ORDER BY created_at
	`
	return s.queryTasks(ctx, query, orgID.String(), employeeID.String())
}

// CountActive returns the number of assigned or in-progress tasks.
func (s *SQLiteTaskSource) CountActive(ctx context.Context, orgID, employeeID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE organization_id = ? AND assignee_id = ?
		  AND status IN ('assigned', 'in_progress')
	`

	var count int
	exec := database.ExecutorFromContext(ctx, s.conn)
	if err := exec.QueryRow(ctx, query, orgID.String(), employeeID.String()).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountCompletedSince returns tasks completed at or after the given instant.
func (s *SQLiteTaskSource) CountCompletedSince(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE organization_id = ? AND assignee_id = ?
		  AND status = 'completed' AND completed_at >= ?
	`

	var count int
	exec := database.ExecutorFromContext(ctx, s.conn)
	if err := exec.QueryRow(ctx, query, orgID.String(), employeeID.String(), since.UTC().Format(time.RFC3339)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// WindowStats aggregates statistics over tasks created at or after the given
// instant.
func (s *SQLiteTaskSource) WindowStats(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) (domain.TaskStats, error) {
	query := `
		SELECT id, organization_id, assignee_id, status, complexity, created_at, completed_at
		FROM tasks
		WHERE organization_id = ? AND assignee_id = ? AND created_at >= ?
		ORDER BY created_at
	`

	tasks, err := s.queryTasks(ctx, query, orgID.String(), employeeID.String(), since.UTC().Format(time.RFC3339))
	if err != nil {
		return domain.TaskStats{}, err
	}
	return domain.AggregateStats(tasks), nil
}

func (s *SQLiteTaskSource) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	exec := database.ExecutorFromContext(ctx, s.conn)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanSQLiteTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanSQLiteTask(row database.Row) (domain.Task, error) {
	var t domain.Task
	var id, orgID, assigneeID, status, complexity, createdAt string
	var completedAt sql.NullString
	if err := row.Scan(&id, &orgID, &assigneeID, &status, &complexity, &createdAt, &completedAt); err != nil {
		return domain.Task{}, err
	}

	var err error
	if t.ID, err = uuid.Parse(id); err != nil {
		return domain.Task{}, fmt.Errorf("parse task id: %w", err)
	}
	if t.OrganizationID, err = uuid.Parse(orgID); err != nil {
		return domain.Task{}, fmt.Errorf("parse organization id: %w", err)
	}
	if t.AssigneeID, err = uuid.Parse(assigneeID); err != nil {
		return domain.Task{}, fmt.Errorf("parse assignee id: %w", err)
	}
	t.Status = domain.Status(status)
	t.Complexity = domain.Complexity(complexity)
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return domain.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	if completedAt.Valid {
		ts, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return domain.Task{}, fmt.Errorf("parse completed_at: %w", err)
		}
		t.CompletedAt = &ts
	}
	return t, nil
}
