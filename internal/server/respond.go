// internal/server/respond.go
package server

import (
	"encoding/json"
	"net/http"

	"brand-intake/internal/common/errors"
)

type errorBody struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
	Details string           `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := errors.AsStandard(err)

	status := errors.HTTPStatus(stdErr.Code)
	fields := map[string]interface{}{
		"path":   r.URL.Path,
		"code":   stdErr.Code,
		"status": status,
		"error":  err,
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields)
	} else {
		s.logger.Debug("request rejected", fields)
	}

	body := errorBody{Code: stdErr.Code, Message: stdErr.Message}
	if status < http.StatusInternalServerError {
		body.Details = stdErr.Details
	}
	writeJSON(w, status, map[string]interface{}{"error": body})
}
