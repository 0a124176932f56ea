package httpx

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MikeMC777/homefood/internal/apperr"
)

// HTTPError is the body of every non-2xx response.
// swagger:model
type HTTPError struct {
	Error string `json:"error" example:"Order not found"`
}

// Message is the body of mutations that return no resource.
// swagger:model
type Message struct {
	Message string `json:"message" example:"Product updated"`
}

// Fail writes err with the status its kind maps to. Storage errors are logged and
// reach the client only as a generic message.
func Fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		if l, ok := c.Get(loggerKey); ok {
			lg := l.(zerolog.Logger)
			lg.Error().Err(err).Str("request_id", c.GetString("rid")).Str("path", c.Request.URL.Path).Msg("request failed")
		}
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}

func OK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Message{Message: msg})
}

// ParamID parses a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid %s", name)
	}
	return id, nil
}

// BindJSON decodes the body and maps decoding failures to a validation error.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperr.Validation("invalid json: %v", err)
	}
	return nil
}

const loggerKey = "logger"

// WithLogger makes log available to Fail.
func WithLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(loggerKey, log)
		c.Next()
	}
}
