package errors

import "net/http"

var ErrJobIDRequired = &Exception{
	Message:    "job id is required",
	StatusCode: http.StatusBadRequest,
}
