package app_error

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// New wraps err with an HTTP status that Abort will honor.
func New(err error, status int) error {
	return statusError{error: err, status: status}
}

func Validation(err error) error {
	return New(err, 400)
}

func Forbidden(err error) error {
	return New(err, 403)
}

// HTTPStatus resolves the response code for err. Unknown record lookups map
// to 404, wrapped status errors keep their status, everything else is a 500.
func HTTPStatus(err error) int {
	var statusErr statusError
	if errors.As(err, &statusErr) {
		return statusErr.status
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 404
	}
	return 500
}

func Abort(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), gin.H{"error": err.Error()})
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}
