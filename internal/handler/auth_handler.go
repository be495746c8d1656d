package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"carevault/internal/auth"
	"carevault/internal/domain"
	"carevault/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type patientRegisterRequest struct {
	domain.Patient
	Password string `json:"password"`
}

type doctorRegisterRequest struct {
	domain.Doctor
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterPatient обрабатывает регистрацию пациента
func (h *AuthHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req patientRegisterRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.authService.RegisterPatient(r.Context(), &req.Patient, req.Password)
	if err != nil {
		h.registerError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Registration successful",
		"id":      id,
	})
}

// RegisterDoctor обрабатывает регистрацию врача
func (h *AuthHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req doctorRegisterRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.authService.RegisterDoctor(r.Context(), &req.Doctor, req.Password)
	if err != nil {
		h.registerError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Registration successful",
		"id":      id,
	})
}

func (h *AuthHandler) registerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingInput):
		respondError(w, http.StatusBadRequest, "Email and password are required")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusConflict, "Email already registered")
	default:
		log.Printf("Registration failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Registration failed")
	}
}

// Login обрабатывает вход и выдает JWT
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, profile, err := h.authService.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingInput):
			respondError(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			log.Printf("Login failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  profile,
	})
}

// Me возвращает идентификатор и роль владельца токена
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, role, err := auth.VerifyToken(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"id":   userID,
		"role": role,
	})
}
