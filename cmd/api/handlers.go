package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"payamigo/internal/apperr"
	"payamigo/internal/helpers"
)

func (app *application) healthCheck(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"env":    app.config.env,
	})
}

func readJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.New("failed to read request body")
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, dst); err != nil {
		return errors.New("invalid JSON")
	}
	return nil
}

// writeServiceError maps service errors onto HTTP responses: rule violations
// become 400s carrying the rule message, missing records become 404s, and
// anything else is logged and hidden behind a 500.
func (app *application) writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *apperr.ValidationError
	var notFoundErr *apperr.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		helpers.WriteError(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		helpers.WriteError(w, http.StatusNotFound, notFoundErr.Error())
	default:
		app.logger.Error("request failed", "error", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
