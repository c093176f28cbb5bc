package middleware

import (
	"github.com/eaglebank/transactions/shared/errs"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const internalErrorMessage = "Internal server error"

type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details []errs.FieldError `json:"details,omitempty"`
}

// ErrorHandler renders the last error a handler attached with c.Error.
// Internal failure text only reaches the client when exposeInternal is set.
func ErrorHandler(exposeInternal bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := errs.From(c.Errors.Last().Err)
		logger := zerolog.Ctx(c.Request.Context())

		message := appErr.Message
		if appErr.Kind == errs.KindInternalFailure {
			logger.Error().Err(appErr).Str("path", c.FullPath()).Msg("request failed")
			if !exposeInternal {
				message = internalErrorMessage
			}
		} else {
			logger.Debug().Str("kind", string(appErr.Kind)).Str("reason", appErr.Message).Msg("request rejected")
		}

		c.JSON(appErr.Status(), ErrorResponse{
			Code:    string(appErr.Kind),
			Message: message,
			Details: appErr.Details,
		})
	}
}
