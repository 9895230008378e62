package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"traffic-nav-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v",
			obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

// Errors are user-facing notifications: one message string, no structured
// codes, no retry hints beyond the text itself.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeBody parses exactly one JSON object with unknown fields rejected.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errExtraJSON
	}
	return nil
}

var errExtraJSON = &extraJSONError{}

type extraJSONError struct{}

func (*extraJSONError) Error() string { return "body must contain only one JSON object" }
