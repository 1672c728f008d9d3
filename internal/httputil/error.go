package httputil

import (
	"log/slog"
	"net/http"
)

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	Error(w, http.StatusInternalServerError, "internal server error")
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("bad request", "message", msg, "error", err)
	} else {
		slog.Warn("bad request", "message", msg)
	}
	Error(w, http.StatusBadRequest, msg)
}

func Unauthorized(w http.ResponseWriter, msg string) {
	slog.Warn("unauthorized", "message", msg)
	Error(w, http.StatusUnauthorized, msg)
}

func Conflict(w http.ResponseWriter, msg string) {
	slog.Warn("conflict", "message", msg)
	Error(w, http.StatusConflict, msg)
}
