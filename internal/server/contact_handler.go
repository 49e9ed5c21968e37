package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

type ContactHandler struct {
	log      *RecordLog
	now      func() time.Time
	errorLog *logrus.Logger
}

func NewContactHandler(log *RecordLog, errorLog *logrus.Logger) *ContactHandler {
	return &ContactHandler{log: log, now: time.Now, errorLog: errorLog}
}

type contactRequestDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit stamps the record with server time and appends it to the contact
// log. Appends are serialized inside RecordLog, so concurrent submissions
// cannot overwrite each other.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	rec := domain.ContactRecord{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Date:    h.now(),
	}
	if err := h.log.Append(rec); err != nil {
		h.errorLog.WithError(err).Error("failed to append contact record")
		respondError(w, http.StatusInternalServerError, "internal_error", "could not save contact")
		return
	}

	respondJSON(w, http.StatusOK, contactResponseDTO{
		Success: true,
		Message: "Contact saved successfully!",
	})
}
