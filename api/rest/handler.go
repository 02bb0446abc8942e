package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// maxBodyBytes bounds the size of request bodies.
const maxBodyBytes = 1 << 20

// Err is an error carrying the http status code and the message returned to the caller.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}

func (e *Err) Error() string {
	return e.Message
}

// RegisterFunc registers fn on mux for the given method and pattern, taking care of
// decoding the json request body and encoding the response or error.
func RegisterFunc[Req, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, pattern string, fn func(ctx context.Context, req *Req) (*Resp, error)) {
	mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		logger := logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		})

		req := new(Req)
		err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(req)
		if err != nil && !errors.Is(err, io.EOF) {
			logger.WithError(err).Warn("Failed to decode request body")
			writeJSON(logger, w, http.StatusBadRequest, NewErrf(http.StatusBadRequest, "Invalid request body"))
			return
		}

		resp, err := fn(r.Context(), req)
		if err != nil {
			apiErr := &Err{}
			if !errors.As(err, &apiErr) {
				logger.WithError(err).Error("Handler returned an unexpected error")
				apiErr = NewErrf(http.StatusInternalServerError, "Internal server error")
			}
			writeJSON(logger, w, apiErr.StatusCode, apiErr)
			return
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

func writeJSON(logger *logrus.Entry, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		logger.WithError(err).Error("Failed to encode response")
	}
}
