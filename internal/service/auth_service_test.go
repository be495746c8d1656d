package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"carevault/internal/auth"
	"carevault/internal/domain"
	"carevault/internal/repository"
	"carevault/internal/service"
)

func newAuthService(t *testing.T) (*service.AuthService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	svc := service.NewAuthService(
		repository.NewPatientRepository(sqlxDB),
		repository.NewDoctorRepository(sqlxDB),
		tokens,
	)
	return svc, mock
}

func patientColumns() []string {
	return []string{
		"id", "email", "password_hash", "first_name", "last_name", "phone",
		"date_of_birth", "gender", "address", "emergency_contact_name",
		"emergency_contact_phone", "blood_group", "allergies", "medical_history",
		"current_medications", "created_at", "updated_at",
	}
}

func TestAuthService_RegisterPatient(t *testing.T) {
	svc, mock := newAuthService(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	patient := &domain.Patient{
		Email:     "p@example.com",
		FirstName: "Ivan",
		LastName:  "Ivanov",
	}

	id, err := svc.RegisterPatient(context.Background(), patient, "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, patient.ID)

	// Пароль сохраняется как bcrypt-хеш, не как открытый текст
	assert.NotEqual(t, "secret", patient.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte("secret")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_RegisterPatient_EmailTaken(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := svc.RegisterPatient(context.Background(), &domain.Patient{Email: "p@example.com"}, "secret")
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestAuthService_RegisterPatient_MissingInput(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.RegisterPatient(context.Background(), &domain.Patient{}, "")
	require.ErrorIs(t, err, service.ErrMissingInput)
}

func TestAuthService_Login_Patient(t *testing.T) {
	svc, mock := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM users WHERE email = \$1`).
		WithArgs("p@example.com").
		WillReturnRows(sqlmock.NewRows(patientColumns()).AddRow(
			"u1", "p@example.com", string(hash), "Ivan", "Ivanov", "+100",
			"1990-01-01", "male", "Moscow", "Anna", "+200",
			nil, nil, nil, nil, now, now,
		))

	token, profile, err := svc.Login(context.Background(), "p@example.com", "secret", service.RolePatient)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	patient, ok := profile.(*domain.Patient)
	require.True(t, ok)
	assert.Equal(t, "u1", patient.ID)

	// Субъект токена - идентификатор аккаунта (owner_id документов)
	claims, err := auth.NewTokenManager("test-secret", time.Hour).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, service.RolePatient, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM users WHERE email = \$1`).
		WithArgs("p@example.com").
		WillReturnRows(sqlmock.NewRows(patientColumns()).AddRow(
			"u1", "p@example.com", string(hash), "Ivan", "Ivanov", "+100",
			"1990-01-01", "male", "Moscow", "Anna", "+200",
			nil, nil, nil, nil, now, now,
		))

	_, _, err = svc.Login(context.Background(), "p@example.com", "wrong", service.RolePatient)
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery(`SELECT \* FROM users WHERE email = \$1`).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(patientColumns()))

	_, _, err := svc.Login(context.Background(), "missing@example.com", "secret", service.RolePatient)
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownRole(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "p@example.com", "secret", "admin")
	require.ErrorIs(t, err, service.ErrMissingInput)
}
