package errors

import "net/http"

var ErrSessionNotFound = &Exception{
	Message:    "session not found or expired",
	StatusCode: http.StatusUnauthorized,
}
