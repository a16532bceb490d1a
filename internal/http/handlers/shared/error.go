package shared

import (
	"errors"
	"net/http"

	"github.com/reborn-nursery/storefront/internal/http/response"
	"github.com/reborn-nursery/storefront/internal/logger"
	"github.com/reborn-nursery/storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog returns a logger annotated with the request id.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError writes an error response and logs the original error when
// one is attached.
func RespondError(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"status", status,
			"message", msg,
			"error", err,
		)
	}
	response.Error(c, status, msg)
}

// MappedHandlerError binds a sentinel error to a response status and
// message.
type MappedHandlerError struct {
	Target  error
	Status  int
	Message string
}

// RespondMappedError resolves err against the rules in order. Validation
// errors use their own message so callers see what failed. Storage
// outages always map to 503 regardless of the rules.
func RespondMappedError(c *gin.Context, err error, rules []MappedHandlerError, fallbackStatus int, fallbackMsg string) {
	if errors.Is(err, service.ErrStoreUnavailable) {
		RespondError(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again later.", err)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			msg := rule.Message
			var validationErr *service.ValidationError
			if errors.Is(rule.Target, service.ErrValidation) && errors.As(err, &validationErr) {
				msg = validationErr.Error()
			}
			RespondError(c, rule.Status, msg, nil)
			return
		}
	}
	RespondError(c, fallbackStatus, fallbackMsg, err)
}
