package middleware

import (
	"io"
	"log/slog"
	"net/http"

	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesOnError = 12

// ErrorHandler renders the last public error a handler attached and logs
// every 5xx with a trimmed stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)
		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func logServerErrors(c *gin.Context) {
	for _, e := range c.Errors {
		resp, ok := e.Meta.(httperr.Response)
		if !ok || resp.Status < http.StatusInternalServerError {
			continue
		}
		slog.ErrorContext(c.Request.Context(), "request failed",
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", resp.Status,
			"error", e.Err.Error(),
			"stack", errs.ExtractStackLines(e.Err, stackLinesOnError),
		)
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}

// CustomRecovery turns a panic into the standard 500 envelope. gin's own
// writer is silenced so the panic is logged once, through slog.
func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "recovered from panic",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
	})
}
