package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
	"github.com/luminahr/talentscope/internal/skills/domain"
)

// SQLiteCatalog implements domain.Catalog using SQLite.
type SQLiteCatalog struct {
	conn database.Connection
}

// NewSQLiteCatalog creates a new SQLite role requirement catalog.
func NewSQLiteCatalog(conn database.Connection) *SQLiteCatalog {
	return &SQLiteCatalog{conn: conn}
}

// RequiredSkills returns the ordered skill requirements for a role. The
// lookup is case-insensitive on the role name.
func (c *SQLiteCatalog) RequiredSkills(ctx context.Context, role string) ([]string, error) {
	query := `
		SELECT skills
		FROM role_requirements
		WHERE LOWER(role) = ?
	`

	exec := database.ExecutorFromContext(ctx, c.conn)
	var raw string
	if err := exec.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(role))).Scan(&raw); err != nil {
		if database.IsNoRows(err) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}

	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, fmt.Errorf("decode role skills: %w", err)
	}
	return skills, nil
}
