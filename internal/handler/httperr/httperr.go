package httperr

import (
	"net/http"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps the error taxonomy onto HTTP status codes.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrLimitExceeded:
		return http.StatusUnprocessableEntity
	case errs.ErrInfrastructure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithUseCaseError answers with the status of err's kind. The reason is
// exposed for client errors only; infrastructure details stay in the logs.
func AbortWithUseCaseError(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	msg := fallback
	switch {
	case status == http.StatusServiceUnavailable:
		msg = "Service temporarily unavailable"
	case status >= http.StatusInternalServerError:
		msg = "Internal server error"
	default:
		if reason := errs.Reason(err); reason != "" {
			msg = reason
		}
	}
	AbortWithError(c, status, err, msg, nil)
}
