package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/addr-canon/internal/pipeline"
)

// AddressRequest is the parse request body.
type AddressRequest struct {
	Address string `json:"address"`
}

// AddressResponse carries the canonical fields and the removed field
// keys, in removal order.
type AddressResponse struct {
	Fields  map[string]string `json:"fields"`
	Removed []string          `json:"removed"`
}

// PhoneRequest is the phone formatting request body.
type PhoneRequest struct {
	Phone string `json:"phone"`
}

// PhoneResponse carries the formatted phone number.
type PhoneResponse struct {
	Phone string `json:"phone"`
}

func (s *Server) handleAddress(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	fields, removed, err := s.pipe.Address(req.Address)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, AddressResponse{Fields: fields, Removed: removed})
}

func (s *Server) handlePhone(w http.ResponseWriter, r *http.Request) {
	var req PhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	formatted, err := pipeline.FormatPhone(req.Phone)
	if err != nil {
		var invalid *pipeline.InvalidPhoneError
		if errors.As(err, &invalid) {
			http.Error(w, invalid.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, PhoneResponse{Phone: formatted})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "encoding error", http.StatusInternalServerError)
	}
}
