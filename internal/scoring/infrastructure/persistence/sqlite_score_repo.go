package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/scoring/domain"
	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
)

// SQLiteScoreRepository implements domain.HistoryRepository using SQLite.
// Timestamps are stored as RFC3339 strings.
type SQLiteScoreRepository struct {
	conn database.Connection
}

// NewSQLiteScoreRepository creates a new SQLite score repository.
func NewSQLiteScoreRepository(conn database.Connection) *SQLiteScoreRepository {
	return &SQLiteScoreRepository{conn: conn}
}

// Append writes a new score record. The history table has no update path.
func (r *SQLiteScoreRepository) Append(ctx context.Context, score *domain.ProductivityScore) error {
	query := `
		INSERT INTO score_history
			(id, organization_id, employee_id, score, completion_rate,
			 avg_completion_hours, avg_complexity, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	exec := database.ExecutorFromContext(ctx, r.conn)
	_, err := exec.Exec(ctx, query,
		score.ID.String(),
		score.OrganizationID.String(),
		score.EmployeeID.String(),
		score.Score,
		score.CompletionRate,
		score.AvgCompletionHours,
		score.AvgComplexity,
		score.CalculatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Latest retrieves the most recent record for an employee, or nil.
func (r *SQLiteScoreRepository) Latest(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error) {
	query := `
		SELECT id, organization_id, employee_id, score, completion_rate,
		       avg_completion_hours, avg_complexity, calculated_at
		FROM score_history
		WHERE organization_id = ? AND employee_id = ?
		ORDER BY calculated_at DESC
		LIMIT 1
	`

	exec := database.ExecutorFromContext(ctx, r.conn)
	score, err := scanSQLiteScore(exec.QueryRow(ctx, query, orgID.String(), employeeID.String()))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return score, nil
}

// LatestPerEmployee retrieves each employee's most recent record joined with
// identity, ordered by score descending.
func (r *SQLiteScoreRepository) LatestPerEmployee(ctx context.Context, orgID uuid.UUID) ([]domain.ScoreWithEmployee, error) {
	query := `
		SELECT s.id, s.organization_id, s.employee_id, s.score, s.completion_rate,
		       s.avg_completion_hours, s.avg_complexity, s.calculated_at,
		       e.name, e.role, e.department
		FROM score_history s
		JOIN employees e
		  ON e.id = s.employee_id AND e.organization_id = s.organization_id
		WHERE s.organization_id = ?
		  AND s.calculated_at = (
			SELECT MAX(calculated_at) FROM score_history
			WHERE employee_id = s.employee_id AND organization_id = s.organization_id
		  )
		ORDER BY s.score DESC
	`

	exec := database.ExecutorFromContext(ctx, r.conn)
	rows, err := exec.Query(ctx, query, orgID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ScoreWithEmployee
	for rows.Next() {
		var entry domain.ScoreWithEmployee
		var score domain.ProductivityScore
		var id, orgIDStr, employeeID, calculatedAt string
		if err := rows.Scan(
			&id, &orgIDStr, &employeeID, &score.Score,
			&score.CompletionRate, &score.AvgCompletionHours, &score.AvgComplexity,
			&calculatedAt,
			&entry.EmployeeName, &entry.Role, &entry.Department,
		); err != nil {
			return nil, err
		}
		if err := fillScoreIdentity(&score, id, orgIDStr, employeeID, calculatedAt); err != nil {
			return nil, err
		}
		entry.Score = &score
		results = append(results, entry)
	}
	return results, rows.Err()
}

// Series retrieves records at or after the given instant, ascending.
func (r *SQLiteScoreRepository) Series(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) ([]*domain.ProductivityScore, error) {
	query := `
		SELECT id, organization_id, employee_id, score, completion_rate,
		       avg_completion_hours, avg_complexity, calculated_at
		FROM score_history
		WHERE organization_id = ? AND employee_id = ? AND calculated_at >= ?
		ORDER BY calculated_at
	`

	exec := database.ExecutorFromContext(ctx, r.conn)
	rows, err := exec.Query(ctx, query, orgID.String(), employeeID.String(), since.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []*domain.ProductivityScore
	for rows.Next() {
		score, err := scanSQLiteScore(rows)
		if err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

func scanSQLiteScore(row database.Row) (*domain.ProductivityScore, error) {
	var score domain.ProductivityScore
	var id, orgID, employeeID, calculatedAt string
	if err := row.Scan(
		&id, &orgID, &employeeID, &score.Score,
		&score.CompletionRate, &score.AvgCompletionHours, &score.AvgComplexity,
		&calculatedAt,
	); err != nil {
		return nil, err
	}
	if err := fillScoreIdentity(&score, id, orgID, employeeID, calculatedAt); err != nil {
		return nil, err
	}
	return &score, nil
}

func fillScoreIdentity(score *domain.ProductivityScore, id, orgID, employeeID, calculatedAt string) error {
	var err error
	if score.ID, err = uuid.Parse(id); err != nil {
		return fmt.Errorf("parse score id: %w", err)
	}
	if score.OrganizationID, err = uuid.Parse(orgID); err != nil {
		return fmt.Errorf("parse organization id: %w", err)
	}
	if score.EmployeeID, err = uuid.Parse(employeeID); err != nil {
		return fmt.Errorf("parse employee id: %w", err)
	}
	if score.CalculatedAt, err = time.Parse(time.RFC3339Nano, calculatedAt); err != nil {
		return fmt.Errorf("parse calculated_at: %w", err)
	}
	return nil
}
