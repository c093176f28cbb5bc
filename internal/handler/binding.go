package handler

import (
	"bytes"

	"github.com/eaglebank/transactions/shared/errs"
	"github.com/eaglebank/transactions/shared/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	noDataMessage      = "No data to submit"
	invalidBodyMessage = "Invalid request body"
)

var nullBody = []byte("null")

// bindAndValidate decodes the JSON body into obj and runs request validation.
// A missing, empty or null body is reported as having no data.
func bindAndValidate(c *gin.Context, obj any) error {
	if c.Request.Body == nil {
		return errs.NewInvalidRequest(noDataMessage)
	}
	raw, err := c.GetRawData()
	if err != nil {
		return errs.NewInvalidRequest(invalidBodyMessage, errs.FieldError{Message: err.Error(), Type: "decode"})
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, nullBody) {
		return errs.NewInvalidRequest(noDataMessage)
	}
	if err := binding.JSON.BindBody(raw, obj); err != nil {
		return errs.NewInvalidRequest(invalidBodyMessage, errs.FieldError{Message: err.Error(), Type: "decode"})
	}
	return middleware.Validate(obj)
}
