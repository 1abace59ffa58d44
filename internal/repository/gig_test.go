//go:build integration
// +build integration

package repository

import (
	"testing"

	"worklink-backend/internal/database/models"
	"worklink-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GigRepositoryTestSuite tests the GigRepository
type GigRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GigRepository
	startups      *StartupRepository
	workers       *WorkerRepository
	applications  *GigApplicationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *GigRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGigRepository(suite.baseTestSuite.DB)
	suite.startups = NewStartupRepository(suite.baseTestSuite.DB)
	suite.workers = NewWorkerRepository(suite.baseTestSuite.DB)
	suite.applications = NewGigApplicationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GigRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GigRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GigRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GigRepositoryTestSuite) seedStartup() *models.Startup {
	startup := suite.factories.Startup.Create()
	suite.NoError(suite.startups.Create(startup))
	return startup
}

// TestCreate tests creating a new gig
func (suite *GigRepositoryTestSuite) TestCreate() {
	startup := suite.seedStartup()

	gig := suite.factories.Gig.Create(startup.ID)
	err := suite.repo.Create(gig)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, gig.ID)
	suite.True(gig.IsOpen)
}

// TestGetOpen tests that only open gigs are listed
func (suite *GigRepositoryTestSuite) TestGetOpen() {
	startup := suite.seedStartup()

	open := suite.factories.Gig.Create(startup.ID)
	suite.NoError(suite.repo.Create(open))
	closed := suite.factories.Gig.Closed(startup.ID)
	suite.NoError(suite.repo.Create(closed))

	gigs, total, err := suite.repo.GetOpen(10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(gigs, 1)
	suite.Equal(open.ID, gigs[0].ID)
}

// TestGetByStartupID tests the owner listing includes closed gigs
func (suite *GigRepositoryTestSuite) TestGetByStartupID() {
	startup := suite.seedStartup()
	other := suite.seedStartup()

	suite.NoError(suite.repo.Create(suite.factories.Gig.Create(startup.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Gig.Closed(startup.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Gig.Create(other.ID)))

	gigs, total, err := suite.repo.GetByStartupID(startup.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(gigs, 2)
}

// TestDeleteWithApplications tests that deleting a gig removes its
// applications in the same transaction
func (suite *GigRepositoryTestSuite) TestDeleteWithApplications() {
	startup := suite.seedStartup()
	gig := suite.factories.Gig.Create(startup.ID)
	suite.NoError(suite.repo.Create(gig))

	worker := suite.factories.Worker.Create()
	suite.NoError(suite.workers.Create(worker))
	app := suite.factories.GigApplication.Create(gig.ID, worker.ID)
	suite.NoError(suite.applications.Create(app))

	suite.NoError(suite.repo.DeleteWithApplications(gig.ID))

	_, err := suite.repo.GetByID(gig.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.applications.GetByID(app.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGigRepositoryTestSuite runs the test suite
func TestGigRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GigRepositoryTestSuite))
}
