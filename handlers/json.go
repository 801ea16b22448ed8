package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"storefront/models"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1_048_576

var Validate = validator.New(validator.WithRequiredStructEnabled())

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warnw("write response", "error", err)
	}
}

// readRequest decodes a JSON body into data and validates it. Every failure
// wraps models.ErrBadRequest.
func (h *Handler) readRequest(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("%w: %v", models.ErrBadRequest, err)
	}
	if err := Validate.Struct(data); err != nil {
		return fmt.Errorf("%w: %s", models.ErrBadRequest, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(msgs, ", ")
}
