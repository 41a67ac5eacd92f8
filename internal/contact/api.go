package contact

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxRequestBody caps the size of an incoming submission.
const maxRequestBody = 64 << 10

// API receives contact submissions and hands them to a Notifier.
type API struct {
	notifier Notifier
	now      func() time.Time
}

// NewAPI creates an API that delivers through n.
func NewAPI(n Notifier) *API {
	return &API{notifier: n, now: time.Now}
}

// RegisterRoutes mounts POST /api/contact on the given router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Post("/api/contact", a.handleSubmit)
}

func (a *API) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if err := form.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "All fields are required"})
		return
	}

	sub := Submission{
		ID:         uuid.NewString(),
		Form:       form,
		RemoteAddr: r.RemoteAddr,
		ReceivedAt: a.now().UTC(),
	}

	if err := a.notifier.Notify(r.Context(), sub); err != nil {
		log.Printf("contact: delivering submission %s: %v", sub.ID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to send message"})
		return
	}

	log.Printf("contact: delivered submission %s from %s", sub.ID, sub.Form.Email)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Message sent successfully!",
		"id":      sub.ID,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
