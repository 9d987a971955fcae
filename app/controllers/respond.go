package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"inkwell/app/repositories"
	"inkwell/app/services"
)

type envelope map[string]interface{}

func sendJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func sendInvalid(w http.ResponseWriter, message string) {
	sendJSON(w, http.StatusBadRequest, envelope{"success": false, "message": message})
}

// sendError translates the service error taxonomy into the response
// envelope: validation 400, forbidden 403, missing 404, anything else a
// generic 500 that leaks nothing.
func sendError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case services.IsValidation(err):
		sendInvalid(w, err.Error())
	case errors.Is(err, services.ErrForbidden):
		sendJSON(w, http.StatusForbidden, envelope{"success": false, "message": "Not authorized"})
	case errors.Is(err, repositories.ErrNotFound):
		sendJSON(w, http.StatusNotFound, envelope{"success": false, "message": notFound})
	default:
		log.Printf("internal error: %v", err)
		sendJSON(w, http.StatusInternalServerError, envelope{"success": false, "message": "Internal server error"})
	}
}
