package cli

import (
	"github.com/google/uuid"

	assignmentApp "github.com/luminahr/talentscope/internal/assignment/application"
	scoringApp "github.com/luminahr/talentscope/internal/scoring/application"
	skillsApp "github.com/luminahr/talentscope/internal/skills/application"
	trendsApp "github.com/luminahr/talentscope/internal/trends/application"
)

// App holds the CLI application dependencies.
type App struct {
	ScoringService    *scoringApp.Service
	SkillsService     *skillsApp.Service
	TrendsService     *trendsApp.Service
	AssignmentService *assignmentApp.Service

	// Current organization (configured per environment)
	CurrentOrgID uuid.UUID
}

// NewApp creates a new CLI application with the provided services.
func NewApp(
	scoring *scoringApp.Service,
	skills *skillsApp.Service,
	trends *trendsApp.Service,
	assignment *assignmentApp.Service,
) *App {
	return &App{
		ScoringService:    scoring,
		SkillsService:     skills,
		TrendsService:     trends,
		AssignmentService: assignment,
		CurrentOrgID:      uuid.Nil,
	}
}

// SetCurrentOrgID updates the current organization ID.
func (a *App) SetCurrentOrgID(id uuid.UUID) {
	a.CurrentOrgID = id
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
