package auth

import (
	"errors"
	"fmt"
	"time"

	"worklink-backend/internal/database/models"
	apperrors "worklink-backend/internal/errors"
	"worklink-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = time.Hour

// AuthClaims represents JWT token claims for an authenticated principal
type AuthClaims struct {
	PrincipalID uuid.UUID   `json:"principal_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Role        models.Role `json:"role" example:"worker"`
	jwt.RegisteredClaims
}

// AuthService provides registration, login and JWT functionality
// for the three principal types
type AuthService struct {
	workers       repository.WorkerRepositoryInterface
	startups      repository.StartupRepositoryInterface
	manufacturers repository.ManufacturerRepositoryInterface
	jwtSecret     string
	validator     *validator.Validate
}

// RegisterWorkerRequest represents the payload for worker registration
type RegisterWorkerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required,min=1,max=200"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Location    string `json:"location,omitempty" validate:"omitempty,max=200"`
	Skills      string `json:"skills,omitempty" validate:"omitempty,max=500"`
}

// RegisterStartupRequest represents the payload for startup registration
type RegisterStartupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
	Location    string `json:"location,omitempty" validate:"omitempty,max=200"`
	Industry    string `json:"industry,omitempty" validate:"omitempty,max=100"`
}

// RegisterManufacturerRequest represents the payload for manufacturer registration
type RegisterManufacturerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
	Location    string `json:"location,omitempty" validate:"omitempty,max=200"`
}

// LoginRequest represents the payload for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response for successful registration or login
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type" example:"Bearer"`
	ExpiresIn   int64       `json:"expires_in" example:"3600"`
	PrincipalID uuid.UUID   `json:"principal_id"`
	Role        models.Role `json:"role"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
}

// NewAuthService creates a new authentication service
func NewAuthService(
	workers repository.WorkerRepositoryInterface,
	startups repository.StartupRepositoryInterface,
	manufacturers repository.ManufacturerRepositoryInterface,
	jwtSecret string,
) *AuthService {
	return &AuthService{
		workers:       workers,
		startups:      startups,
		manufacturers: manufacturers,
		jwtSecret:     jwtSecret,
		validator:     validator.New(),
	}
}

// RegisterWorker creates a new worker account and returns a signed token
func (s *AuthService) RegisterWorker(req *RegisterWorkerRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	worker := &models.Worker{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Location:     req.Location,
		Skills:       req.Skills,
	}

	if err := s.workers.Create(worker); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return s.buildAuthResponse(worker.ID, models.RoleWorker, worker.FullName, worker.Email)
}

// RegisterStartup creates a new startup account and returns a signed token
func (s *AuthService) RegisterStartup(req *RegisterStartupRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	startup := &models.Startup{
		Email:        req.Email,
		PasswordHash: hash,
		CompanyName:  req.CompanyName,
		Location:     req.Location,
		Industry:     req.Industry,
	}

	if err := s.startups.Create(startup); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create startup: %w", err)
	}

	return s.buildAuthResponse(startup.ID, models.RoleStartup, startup.CompanyName, startup.Email)
}

// RegisterManufacturer creates a new manufacturer account and returns a signed token
func (s *AuthService) RegisterManufacturer(req *RegisterManufacturerRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	manufacturer := &models.Manufacturer{
		Email:        req.Email,
		PasswordHash: hash,
		CompanyName:  req.CompanyName,
		Location:     req.Location,
	}

	if err := s.manufacturers.Create(manufacturer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create manufacturer: %w", err)
	}

	return s.buildAuthResponse(manufacturer.ID, models.RoleManufacturer, manufacturer.CompanyName, manufacturer.Email)
}

// Login authenticates a principal of the given role by email and password
func (s *AuthService) Login(role models.Role, req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	switch role {
	case models.RoleWorker:
		worker, err := s.workers.GetByEmail(req.Email)
		if err != nil {
			return nil, loginLookupError(err)
		}
		if err := comparePassword(worker.PasswordHash, req.Password); err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		return s.buildAuthResponse(worker.ID, models.RoleWorker, worker.FullName, worker.Email)
	case models.RoleStartup:
		startup, err := s.startups.GetByEmail(req.Email)
		if err != nil {
			return nil, loginLookupError(err)
		}
		if err := comparePassword(startup.PasswordHash, req.Password); err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		return s.buildAuthResponse(startup.ID, models.RoleStartup, startup.CompanyName, startup.Email)
	case models.RoleManufacturer:
		manufacturer, err := s.manufacturers.GetByEmail(req.Email)
		if err != nil {
			return nil, loginLookupError(err)
		}
		if err := comparePassword(manufacturer.PasswordHash, req.Password); err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		return s.buildAuthResponse(manufacturer.ID, models.RoleManufacturer, manufacturer.CompanyName, manufacturer.Email)
	default:
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("%q is not a valid role", role))
	}
}

// GenerateJWT creates a signed JWT token for the principal
func (s *AuthService) GenerateJWT(principalID uuid.UUID, role models.Role) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		PrincipalID: principalID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "worklink-backend",
			Subject:   principalID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if !claims.Role.IsValid() {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

func (s *AuthService) buildAuthResponse(principalID uuid.UUID, role models.Role, name, email string) (*AuthResponse, error) {
	token, err := s.GenerateJWT(principalID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenLifetime.Seconds()),
		PrincipalID: principalID,
		Role:        role,
		Name:        name,
		Email:       email,
	}, nil
}

func loginLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Do not reveal whether the email exists
		return apperrors.ErrInvalidCredentials
	}
	return fmt.Errorf("failed to look up account: %w", err)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
