package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"carevault/internal/auth"
	"carevault/internal/domain"
	"carevault/internal/repository"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService отвечает за регистрацию и вход пациентов и врачей.
// Идентификатор аккаунта служит owner_id для документов в хранилище.
type AuthService struct {
	patientRepo *repository.PatientRepository
	doctorRepo  *repository.DoctorRepository
	tokens      *auth.TokenManager
}

func NewAuthService(
	patientRepo *repository.PatientRepository,
	doctorRepo *repository.DoctorRepository,
	tokens *auth.TokenManager,
) *AuthService {
	return &AuthService{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		tokens:      tokens,
	}
}

// RegisterPatient создает аккаунт пациента и возвращает его идентификатор
func (s *AuthService) RegisterPatient(ctx context.Context, patient *domain.Patient, password string) (string, error) {
	if patient.Email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrMissingInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	patient.ID = uuid.New().String()
	patient.PasswordHash = string(hash)

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		if isUniqueViolation(err) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("%w: %v", ErrMetadataFailure, err)
	}

	return patient.ID, nil
}

// RegisterDoctor создает аккаунт врача и возвращает его идентификатор
func (s *AuthService) RegisterDoctor(ctx context.Context, doctor *domain.Doctor, password string) (string, error) {
	if doctor.Email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrMissingInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	doctor.ID = uuid.New().String()
	doctor.PasswordHash = string(hash)

	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		if isUniqueViolation(err) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("%w: %v", ErrMetadataFailure, err)
	}

	return doctor.ID, nil
}

// Login проверяет учетные данные и выпускает JWT.
// Вторым значением возвращается профиль без хеша пароля.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (string, interface{}, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", ErrMissingInput)
	}

	var (
		id      string
		hash    string
		profile interface{}
	)

	switch role {
	case RoleDoctor:
		doctor, err := s.doctorRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", nil, ErrInvalidCredentials
			}
			return "", nil, fmt.Errorf("%w: %v", ErrMetadataFailure, err)
		}
		id, hash, profile = doctor.ID, doctor.PasswordHash, doctor
	case RolePatient, "":
		role = RolePatient
		patient, err := s.patientRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", nil, ErrInvalidCredentials
			}
			return "", nil, fmt.Errorf("%w: %v", ErrMetadataFailure, err)
		}
		id, hash, profile = patient.ID, patient.PasswordHash, patient
	default:
		return "", nil, fmt.Errorf("%w: unknown role %q", ErrMissingInput, role)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(id, role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, profile, nil
}

// isUniqueViolation распознает нарушение уникального ограничения Postgres
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
