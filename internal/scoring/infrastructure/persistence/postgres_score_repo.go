// Package persistence contains score history repositories.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luminahr/talentscope/internal/scoring/domain"
	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
)

// PostgresScoreRepository implements domain.HistoryRepository using PostgreSQL.
type PostgresScoreRepository struct {
	conn database.Connection
}

// NewPostgresScoreRepository creates a new PostgreSQL score repository.
func NewPostgresScoreRepository(conn database.Connection) *PostgresScoreRepository {
	return &PostgresScoreRepository{conn: conn}
}

// Append writes a new score record. The history table has no update path.
func (r *PostgresScoreRepository) Append(ctx context.Context, score *domain.ProductivityScore) error {
	query := `
		INSERT INTO score_history
			(id, organization_id, employee_id, score, completion_rate,
			 avg_completion_hours, avg_complexity, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	exec := database.ExecutorFromContext(ctx, r.conn)
	_, err := exec.Exec(ctx, query,
		score.ID,
		score.OrganizationID,
		score.EmployeeID,
		score.Score,
		score.CompletionRate,
		score.AvgCompletionHours,
		score.AvgComplexity,
		score.CalculatedAt,
	)
	return err
}

// Latest retrieves the most recent record for an employee, or nil.
func (r *PostgresScoreRepository) Latest(ctx context.Context, orgID, employeeID uuid.UUID) (*domain.ProductivityScore, error) {
	query := `
		SELECT id, organization_id, employee_id, score, completion_rate,
		       avg_completion_hours, avg_complexity, calculated_at
		FROM score_history
		WHERE organization_id = $1 AND employee_id = $2
		ORDER BY calculated_at DESC
		LIMIT 1
	`

	exec := database.ExecutorFromContext(ctx, r.conn)
	score, err := scanScore(exec.QueryRow(ctx, query, orgID, employeeID))
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
func (r *PostgresScoreRepository) LatestPerEmployee(ctx context.Context, orgID uuid.UUID) ([]domain.ScoreWithEmployee, error) {
	query := `
		SELECT * FROM (
			SELECT DISTINCT ON (s.employee_id)
				s.id, s.organization_id, s.employee_id, s.score, s.completion_rate,
				s.avg_completion_hours, s.avg_complexity, s.calculated_at,
				e.name, e.role, e.department
			FROM score_history s
			JOIN employees e
			  ON e.id = s.employee_id AND e.organization_id = s.organization_id
			WHERE s.organization_id = $1
			ORDER BY s.employee_id, s.calculated_at DESC
		) latest
		ORDER BY score DESC
	`

	exec := database.ExecutorFromContext(ctx, r.conn)
	rows, err := exec.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ScoreWithEmployee
	for rows.Next() {
		var entry domain.ScoreWithEmployee
		var score domain.ProductivityScore
		if err := rows.Scan(
			&score.ID, &score.OrganizationID, &score.EmployeeID, &score.Score,
			&score.CompletionRate, &score.AvgCompletionHours, &score.AvgComplexity,
			&score.CalculatedAt,
			&entry.EmployeeName, &entry.Role, &entry.Department,
		); err != nil {
			return nil, err
		}
		entry.Score = &score
		results = append(results, entry)
	}
	return results, rows.Err()
}

// Series retrieves records at or after the given instant, ascending.
func (r *PostgresScoreRepository) Series(ctx context.Context, orgID, employeeID uuid.UUID, since time.Time) ([]*domain.ProductivityScore, error) {
	query := `
		SELECT id, organization_id, employee_id, score, completion_rate,
		       avg_completion_hours, avg_complexity, calculated_at
		FROM score_history
		WHERE organization_id = $1 AND employee_id = $2 AND calculated_at >= $3
		ORDER BY calculated_at
	`

	exec := database.ExecutorFromContext(ctx, r.conn)
	rows, err := exec.Query(ctx, query, orgID, employeeID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []*domain.ProductivityScore
	for rows.Next() {
		score, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

func scanScore(row database.Row) (*domain.ProductivityScore, error) {
	var score domain.ProductivityScore
	if err := row.Scan(
		&score.ID, &score.OrganizationID, &score.EmployeeID, &score.Score,
		&score.CompletionRate, &score.AvgCompletionHours, &score.AvgComplexity,
		&score.CalculatedAt,
	); err != nil {
		return nil, err
	}
	return &score, nil
}
