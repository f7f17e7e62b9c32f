package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "hotel-core/internal/handler/dto/request"
	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/handler/middleware"
	"hotel-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Unauthorized", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := reqdto.ParseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body, including one of unknown length.
func bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		httperr.BadRequest(c, err, "Invalid request")
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return false
	}
	return true
}
