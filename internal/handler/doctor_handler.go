package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"carevault/internal/domain"
	"carevault/internal/service"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// Search обрабатывает поиск врачей по специальности и локации.
// Результат возвращается прямо в ответе.
func (h *DoctorHandler) Search(w http.ResponseWriter, r *http.Request) {
	var filter domain.DoctorSearch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&filter); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doctors, err := h.doctorService.Search(r.Context(), filter)
	if err != nil {
		log.Printf("Doctor search failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"doctors": doctors})
}

// ListAll возвращает всех врачей без фильтра
func (h *DoctorHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorService.Search(r.Context(), domain.DoctorSearch{})
	if err != nil {
		log.Printf("Doctor listing failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"doctors": doctors})
}
