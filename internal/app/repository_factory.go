package app

import (
	"fmt"

	scoringDomain "github.com/luminahr/talentscope/internal/scoring/domain"
	scoringPersistence "github.com/luminahr/talentscope/internal/scoring/infrastructure/persistence"
	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
	skillsDomain "github.com/luminahr/talentscope/internal/skills/domain"
	skillsCatalog "github.com/luminahr/talentscope/internal/skills/infrastructure/catalog"
	workforceDomain "github.com/luminahr/talentscope/internal/workforce/domain"
	workforcePersistence "github.com/luminahr/talentscope/internal/workforce/infrastructure/persistence"
)

// RepositoryFactory creates repositories based on the database driver.
type RepositoryFactory struct {
	conn   database.Connection
	driver database.Driver
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(conn database.Connection) *RepositoryFactory {
	return &RepositoryFactory{
		conn:   conn,
		driver: conn.Driver(),
	}
}

// Directory creates an employee directory for the configured driver.
func (f *RepositoryFactory) Directory() (workforceDomain.Directory, error) {
	switch f.driver {
	case database.DriverPostgres:
		return workforcePersistence.NewPostgresDirectory(f.conn), nil
	case database.DriverSQLite:
		return workforcePersistence.NewSQLiteDirectory(f.conn), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// TaskSource creates a task source for the configured driver.
func (f *RepositoryFactory) TaskSource() (workforceDomain.TaskSource, error) {
	switch f.driver {
	case database.DriverPostgres:
		return workforcePersistence.NewPostgresTaskSource(f.conn), nil
	case database.DriverSQLite:
		return workforcePersistence.NewSQLiteTaskSource(f.conn), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// ScoreHistory creates a score history repository for the configured driver.
func (f *RepositoryFactory) ScoreHistory() (scoringDomain.HistoryRepository, error) {
	switch f.driver {
	case database.DriverPostgres:
		return scoringPersistence.NewPostgresScoreRepository(f.conn), nil
	case database.DriverSQLite:
		return scoringPersistence.NewSQLiteScoreRepository(f.conn), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// RoleCatalog creates a role requirement catalog for the configured driver.
func (f *RepositoryFactory) RoleCatalog() (skillsDomain.Catalog, error) {
	switch f.driver {
	case database.DriverPostgres:
		return skillsCatalog.NewPostgresCatalog(f.conn), nil
	case database.DriverSQLite:
		return skillsCatalog.NewSQLiteCatalog(f.conn), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// Driver returns the database driver type.
func (f *RepositoryFactory) Driver() database.Driver {
	return f.driver
}

// Connection returns the underlying database connection.
func (f *RepositoryFactory) Connection() database.Connection {
	return f.conn
}
