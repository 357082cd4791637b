package errors

import "net/http"

var ErrDuplicateUser = &Exception{
	Message:    "userName or email already registered",
	StatusCode: http.StatusConflict,
}
