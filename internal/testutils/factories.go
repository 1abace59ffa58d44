package testutils

import (
	"fmt"
	"time"

	"worklink-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// testPasswordHash is a bcrypt hash of "password123", shared by every factory
// account so login tests do not pay the hashing cost per record
var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

func baseModel() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WorkerFactory provides methods to create test Worker data
type WorkerFactory struct{}

// NewWorkerFactory creates a new WorkerFactory
func NewWorkerFactory() *WorkerFactory {
	return &WorkerFactory{}
}

// Create creates a test Worker with default values and a unique email
func (f *WorkerFactory) Create() *models.Worker {
	base := baseModel()
	return &models.Worker{
		BaseModel:    base,
		FullName:     "Test Worker",
		Email:        fmt.Sprintf("worker-%s@test.com", base.ID.String()[:8]),
		PasswordHash: testPasswordHash,
		PhoneNumber:  "+49 171 5550100",
		Location:     "Hamburg",
		Skills:       "welding, assembly",
	}
}

// WithEmail sets a custom email for the worker
func (f *WorkerFactory) WithEmail(email string) *models.Worker {
	worker := f.Create()
	worker.Email = email
	return worker
}

// StartupFactory provides methods to create test Startup data
type StartupFactory struct{}

// NewStartupFactory creates a new StartupFactory
func NewStartupFactory() *StartupFactory {
	return &StartupFactory{}
}

// Create creates a test Startup with default values and a unique email
func (f *StartupFactory) Create() *models.Startup {
	base := baseModel()
	return &models.Startup{
		BaseModel:    base,
		CompanyName:  "Test Startup",
		Email:        fmt.Sprintf("startup-%s@test.com", base.ID.String()[:8]),
		PasswordHash: testPasswordHash,
		Location:     "Berlin",
		Industry:     "manufacturing",
	}
}

// ManufacturerFactory provides methods to create test Manufacturer data
type ManufacturerFactory struct{}

// NewManufacturerFactory creates a new ManufacturerFactory
func NewManufacturerFactory() *ManufacturerFactory {
	return &ManufacturerFactory{}
}

// Create creates a test Manufacturer with default values and a unique email
func (f *ManufacturerFactory) Create() *models.Manufacturer {
	base := baseModel()
	return &models.Manufacturer{
		BaseModel:    base,
		CompanyName:  "Test Manufacturer",
		Email:        fmt.Sprintf("manufacturer-%s@test.com", base.ID.String()[:8]),
		PasswordHash: testPasswordHash,
		Location:     "Leipzig",
	}
}

// GigFactory provides methods to create test Gig data
type GigFactory struct{}

// NewGigFactory creates a new GigFactory
func NewGigFactory() *GigFactory {
	return &GigFactory{}
}

// Create creates an open test Gig owned by the given startup
func (f *GigFactory) Create(startupID uuid.UUID) *models.Gig {
	return &models.Gig{
		BaseModel:    baseModel(),
		StartupID:    startupID,
		Title:        "Test Gig",
		Description:  "A test gig",
		Location:     "Hamburg",
		Compensation: "25 EUR/h",
		IsOpen:       true,
	}
}

// Closed creates a closed test Gig owned by the given startup
func (f *GigFactory) Closed(startupID uuid.UUID) *models.Gig {
	gig := f.Create(startupID)
	gig.IsOpen = false
	return gig
}

// MachineFactory provides methods to create test Machine data
type MachineFactory struct{}

// NewMachineFactory creates a new MachineFactory
func NewMachineFactory() *MachineFactory {
	return &MachineFactory{}
}

// Create creates an available test Machine owned by the given manufacturer
func (f *MachineFactory) Create(manufacturerID uuid.UUID) *models.Machine {
	return &models.Machine{
		BaseModel:      baseModel(),
		ManufacturerID: manufacturerID,
		Name:           "Test Machine",
		Description:    "A test machine",
		Location:       "Leipzig",
		DailyRate:      100,
		Available:      true,
	}
}

// Unavailable creates an unavailable test Machine owned by the given manufacturer
func (f *MachineFactory) Unavailable(manufacturerID uuid.UUID) *models.Machine {
	machine := f.Create(manufacturerID)
	machine.Available = false
	return machine
}

// GigApplicationFactory provides methods to create test GigApplication data
type GigApplicationFactory struct{}

// NewGigApplicationFactory creates a new GigApplicationFactory
func NewGigApplicationFactory() *GigApplicationFactory {
	return &GigApplicationFactory{}
}

// Create creates a pending test GigApplication
func (f *GigApplicationFactory) Create(gigID, workerID uuid.UUID) *models.GigApplication {
	return &models.GigApplication{
		BaseModel: baseModel(),
		GigID:     gigID,
		WorkerID:  workerID,
		Status:    models.ApplicationStatusPending,
		Message:   "Test application message",
		AppliedAt: time.Now().UTC(),
	}
}

// WithStatus creates a test GigApplication in the given state
func (f *GigApplicationFactory) WithStatus(gigID, workerID uuid.UUID, status models.ApplicationStatus) *models.GigApplication {
	app := f.Create(gigID, workerID)
	app.Status = status
	return app
}

// MachineApplicationFactory provides methods to create test MachineApplication data
type MachineApplicationFactory struct{}

// NewMachineApplicationFactory creates a new MachineApplicationFactory
func NewMachineApplicationFactory() *MachineApplicationFactory {
	return &MachineApplicationFactory{}
}

// Create creates a pending test MachineApplication
func (f *MachineApplicationFactory) Create(machineID, applicantID uuid.UUID, applicantType models.ApplicantType) *models.MachineApplication {
	return &models.MachineApplication{
		BaseModel:     baseModel(),
		MachineID:     machineID,
		ApplicantID:   applicantID,
		ApplicantType: applicantType,
		Status:        models.ApplicationStatusPending,
		Message:       "Test application message",
		AppliedAt:     time.Now().UTC(),
	}
}

// WithStatus creates a test MachineApplication in the given state
func (f *MachineApplicationFactory) WithStatus(machineID, applicantID uuid.UUID, applicantType models.ApplicantType, status models.ApplicationStatus) *models.MachineApplication {
	app := f.Create(machineID, applicantID, applicantType)
	app.Status = status
	return app
}

// FactorySet provides access to all factories
type FactorySet struct {
	Worker             *WorkerFactory
	Startup            *StartupFactory
	Manufacturer       *ManufacturerFactory
	Gig                *GigFactory
	Machine            *MachineFactory
	GigApplication     *GigApplicationFactory
	MachineApplication *MachineApplicationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Worker:             NewWorkerFactory(),
		Startup:            NewStartupFactory(),
		Manufacturer:       NewManufacturerFactory(),
		Gig:                NewGigFactory(),
		Machine:            NewMachineFactory(),
		GigApplication:     NewGigApplicationFactory(),
		MachineApplication: NewMachineApplicationFactory(),
	}
}
