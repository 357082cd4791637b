package errors

import "net/http"

var ErrUserReferenced = &Exception{
	Message:    "user is referenced by existing jobs",
	StatusCode: http.StatusConflict,
}
