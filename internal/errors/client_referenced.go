package errors

import "net/http"

var ErrClientReferenced = &Exception{
	Message:    "client is referenced by existing jobs",
	StatusCode: http.StatusConflict,
}
