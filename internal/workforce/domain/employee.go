// Package domain contains the shared workforce read models consumed by the
// analytics contexts.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Employee is the read model of an employee record as supplied by the
// platform's data store.
type Employee struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Role           string
	Department     string
	Skills         []string
	Active         bool
}

// HasSkill reports whether the employee's skill set contains the given skill.
// Comparison is case-insensitive.
func (e Employee) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}
