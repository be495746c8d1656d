package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"carevault/internal/domain"
	"carevault/internal/service"
)

const maxUploadSize = 100 << 20 // 100MB

type VaultHandler struct {
	vaultService *service.VaultService
}

func NewVaultHandler(vaultService *service.VaultService) *VaultHandler {
	return &VaultHandler{vaultService: vaultService}
}

// Upload обрабатывает загрузку документа
func (h *VaultHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	input := domain.VaultUpload{
		FileName:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Type:         r.FormValue("type"),
		PrescribedAt: r.FormValue("prescribedAt"),
		OwnerID:      r.FormValue("userId"),
	}

	if err := h.vaultService.Upload(r.Context(), file, input); err != nil {
		log.Printf("Upload failed: %v", err)
		switch {
		case errors.Is(err, service.ErrMissingInput), errors.Is(err, service.ErrInvalidTimestamp):
			respondError(w, http.StatusBadRequest, "Missing file or timestamp")
		case errors.Is(err, service.ErrMetadataFailure):
			respondError(w, http.StatusInternalServerError, "Metadata insert failed")
		default:
			respondError(w, http.StatusInternalServerError, "Upload failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Uploaded successfully"})
}

// ListFiles возвращает все документы с подписанными ссылками
func (h *VaultHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	h.listFiles(w, r, "")
}

// ListUserFiles возвращает документы одного владельца
func (h *VaultHandler) ListUserFiles(w http.ResponseWriter, r *http.Request) {
	h.listFiles(w, r, chi.URLParam(r, "userId"))
}

func (h *VaultHandler) listFiles(w http.ResponseWriter, r *http.Request, ownerID string) {
	files, err := h.vaultService.List(r.Context(), ownerID)
	if err != nil {
		log.Printf("Failed to list files: %v", err)
		respondError(w, http.StatusInternalServerError, "Fetch failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"files": files})
}

// Delete удаляет документ вместе с блобом
func (h *VaultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := h.vaultService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(w, http.StatusNotFound, "File not found")
			return
		}
		log.Printf("Failed to delete document %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Delete failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
}
