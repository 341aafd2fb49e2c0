// Package catalog contains data store adapters for role skill requirements.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
	"github.com/luminahr/talentscope/internal/skills/domain"
)

// PostgresCatalog implements domain.Catalog using PostgreSQL.
type PostgresCatalog struct {
	conn database.Connection
}

// NewPostgresCatalog creates a new PostgreSQL role requirement catalog.
func NewPostgresCatalog(conn database.Connection) *PostgresCatalog {
	return &PostgresCatalog{conn: conn}
}

// RequiredSkills returns the ordered skill requirements for a role. The
// lookup is case-insensitive on the role name.
func (c *PostgresCatalog) RequiredSkills(ctx context.Context, role string) ([]string, error) {
	query := `
		SELECT skills
		FROM role_requirements
		WHERE LOWER(role) = $1
	`

	exec := database.ExecutorFromContext(ctx, c.conn)
	var raw []byte
	if err := exec.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(role))).Scan(&raw); err != nil {
		if database.IsNoRows(err) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}

	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, fmt.Errorf("decode role skills: %w", err)
	}
	return skills, nil
}
