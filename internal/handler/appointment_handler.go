package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"carevault/internal/domain"
	"carevault/internal/service"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Book обрабатывает бронирование приема
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req domain.AppointmentRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.Book(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingInput) {
			respondError(w, http.StatusBadRequest, "Missing required appointment fields")
			return
		}
		log.Printf("Appointment booking failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Booking failed")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Appointment booked",
		"appointment": appointment,
	})
}
