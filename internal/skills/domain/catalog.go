package domain

import (
	"context"
	"errors"
	"strings"
)

// ErrRoleNotFound indicates the catalog has no entry for a role.
var ErrRoleNotFound = errors.New("role not found in requirement catalog")

// Catalog looks up the ordered skill requirements for a role. The primary
// implementation is backed by the organization's requirement tables; lookups
// are case-insensitive on the role name.
type Catalog interface {
	RequiredSkills(ctx context.Context, role string) ([]string, error)
}

// fallbackRequirement is one builtin role pattern. A pattern matches when it
// contains the role name or the role name contains it, case-insensitively.
type fallbackRequirement struct {
	pattern string
	skills  []string
}

// fallbackRequirements covers common roles when the catalog has no entry.
var fallbackRequirements = []fallbackRequirement{
	{"frontend developer", []string{"JavaScript", "HTML", "CSS", "React", "TypeScript"}},
	{"backend developer", []string{"Go", "SQL", "REST APIs", "Docker", "PostgreSQL"}},
	{"full stack developer", []string{"JavaScript", "HTML", "CSS", "Node.js", "SQL", "React"}},
	{"devops engineer", []string{"Docker", "Kubernetes", "CI/CD", "Terraform", "Linux"}},
	{"data analyst", []string{"SQL", "Python", "Statistics", "Data Visualization"}},
	{"data scientist", []string{"Python", "Machine Learning", "SQL", "Statistics"}},
	{"qa engineer", []string{"Test Automation", "Selenium", "API Testing", "SQL"}},
	{"product manager", []string{"Product Strategy", "Agile", "Analytics", "Communication"}},
	{"project manager", []string{"Project Planning", "Agile", "Risk Management", "Communication"}},
	{"ux designer", []string{"Figma", "User Research", "Wireframing", "Prototyping"}},
}

// genericRequirements is the minimal set used when no pattern matches.
var genericRequirements = []string{"Communication", "Problem Solving", "Teamwork"}

// Resolver resolves the required skills for a role: catalog entry first, then
// the builtin pattern table, then a generic minimal set. The builtin tables
// are immutable; Resolver is safe for concurrent use.
type Resolver struct {
	catalog Catalog
}

// NewResolver creates a resolver over the given catalog. catalog may be nil,
// in which case only the builtin tables are consulted.
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve returns the ordered required skills for a role. Only store failures
// are returned as errors; an unknown role falls back, it never fails.
func (r *Resolver) Resolve(ctx context.Context, role string) ([]string, error) {
	if r.catalog != nil {
		skills, err := r.catalog.RequiredSkills(ctx, role)
		switch {
		case err == nil:
			return skills, nil
		case !errors.Is(err, ErrRoleNotFound):
			return nil, err
		}
	}

	name := strings.ToLower(strings.TrimSpace(role))
	if name == "" {
		return genericRequirements, nil
	}
	for _, req := range fallbackRequirements {
		if strings.Contains(name, req.pattern) || strings.Contains(req.pattern, name) {
			return req.skills, nil
		}
	}
	return genericRequirements, nil
}
