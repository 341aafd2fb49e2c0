package domain

import "strings"

// ClassificationPolicyVersion identifies the keyword policy below. Bump it
// when the rule table changes so downstream reports can attribute priorities.
const ClassificationPolicyVersion = "2025-06"

// ClassificationRule maps skill-name keywords to a gap priority.
type ClassificationRule struct {
	Priority GapPriority
	Reason   string
	Keywords []string
}

// classificationRules is evaluated in order; the first keyword match wins.
// Skills matching no rule are low priority.
var classificationRules = []ClassificationRule{
	{
		Priority: PriorityCritical,
		Reason:   "foundational technology for the role",
		Keywords: []string{
			"javascript", "typescript", "python", "java", "golang", "go",
			"c#", "ruby", "php", "react", "angular", "vue", "node",
			"sql", "postgres", "mysql", "mongodb", "html", "css",
		},
	},
	{
		Priority: PriorityHigh,
		Reason:   "core tooling and delivery skill",
		Keywords: []string{
			"docker", "kubernetes", "aws", "azure", "gcp", "terraform",
			"git", "ci/cd", "testing", "test automation", "selenium",
			"linux", "rest", "api", "graphql",
		},
	},
	{
		Priority: PriorityMedium,
		Reason:   "process and methodology skill",
		Keywords: []string{
			"agile", "scrum", "kanban", "devops", "documentation",
			"code review", "planning", "analytics", "statistics",
		},
	},
}

// ClassifySkill determines the gap priority of a missing skill from its name.
// Matching is case-insensitive substring containment against the rule table.
func ClassifySkill(skill string) (GapPriority, string) {
	name := strings.ToLower(skill)
	for _, rule := range classificationRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(name, keyword) {
				return rule.Priority, rule.Reason
			}
		}
	}
	return PriorityLow, "supplementary skill"
}
