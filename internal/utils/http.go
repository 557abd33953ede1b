package utils

import (
	"encoding/json"
	"net/http"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
)

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// JSONError writes {"error": "..."} with a given status.
func JSONError(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// Error maps err through the apperr taxonomy. With debug on, the internal error
// text is added under "message".
func Error(w http.ResponseWriter, err error, debug bool) {
	body := map[string]string{"error": apperr.PublicMessage(err)}
	if debug {
		body["message"] = err.Error()
	}
	JSON(w, apperr.HTTPStatus(err), body)
}

// DecodeJSON parses the JSON body into v. On failure it has already written a 400.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		JSONError(w, http.StatusBadRequest, "empty request body")
		return apperr.ErrInvalidJSON
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		JSONError(w, http.StatusBadRequest, apperr.ErrInvalidJSON.Error())
		return apperr.ErrInvalidJSON
	}

	return nil
}
