package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/NavindyaD/cv-chat/internal/mailer"
)

// handleEmail sends an answer or custom message by email. Transport
// failures surface as JSON error text, never as panics.
func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Recipient string `json:"recipient"`
		Subject   string `json:"subject"`
		Body      string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Recipient == "" || req.Subject == "" || strings.TrimSpace(req.Body) == "" {
		jsonError(w, "recipient, subject, and body are required", http.StatusBadRequest)
		return
	}

	messageID, err := s.sender.Send(r.Context(), req.Recipient, req.Subject, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, mailer.ErrInvalidRecipient):
			jsonError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, mailer.ErrConfigMissing):
			jsonError(w, err.Error(), http.StatusServiceUnavailable)
		default:
			jsonError(w, "failed to send email: "+err.Error(), http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message_id": messageID,
		"message":    fmt.Sprintf("Email sent successfully to %s!", req.Recipient),
	})
}
