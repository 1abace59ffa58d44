//go:build integration
// +build integration

package repository

import (
	"testing"

	"worklink-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkerRepositoryTestSuite tests the WorkerRepository
type WorkerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WorkerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWorkerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new worker
func (suite *WorkerRepositoryTestSuite) TestCreate() {
	worker := suite.factories.Worker.Create()
	err := suite.repo.Create(worker)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, worker.ID)
	suite.NotZero(worker.CreatedAt)
}

// TestCreateDuplicateEmail tests the email unique index
func (suite *WorkerRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.Worker.WithEmail("taken@test.com")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Worker.WithEmail("taken@test.com")
	err := suite.repo.Create(second)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByEmail tests retrieving a worker by email
func (suite *WorkerRepositoryTestSuite) TestGetByEmail() {
	worker := suite.factories.Worker.WithEmail("mara@test.com")
	suite.NoError(suite.repo.Create(worker))

	found, err := suite.repo.GetByEmail("mara@test.com")
	suite.NoError(err)
	suite.Equal(worker.ID, found.ID)

	_, err = suite.repo.GetByEmail("missing@test.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDs tests the batch lookup used for applicant summaries
func (suite *WorkerRepositoryTestSuite) TestGetByIDs() {
	a := suite.factories.Worker.Create()
	suite.NoError(suite.repo.Create(a))
	b := suite.factories.Worker.Create()
	suite.NoError(suite.repo.Create(b))

	workers, err := suite.repo.GetByIDs([]uuid.UUID{a.ID, b.ID})
	suite.NoError(err)
	suite.Len(workers, 2)

	workers, err = suite.repo.GetByIDs(nil)
	suite.NoError(err)
	suite.Empty(workers)
}

// TestUpdate tests updating a worker profile
func (suite *WorkerRepositoryTestSuite) TestUpdate() {
	worker := suite.factories.Worker.Create()
	suite.NoError(suite.repo.Create(worker))

	worker.Location = "Bremen"
	suite.NoError(suite.repo.Update(worker))

	found, err := suite.repo.GetByID(worker.ID)
	suite.NoError(err)
	suite.Equal("Bremen", found.Location)
}

// TestWorkerRepositoryTestSuite runs the test suite
func TestWorkerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerRepositoryTestSuite))
}
