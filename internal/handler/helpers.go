package handler

import (
	"errors"
	"net/http"
	"strconv"

	"menucatalog/internal/apierror"
	"menucatalog/internal/middleware"
	"menucatalog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// bindJSON decodes the request body. Returns false and writes the error
// response if the body is malformed; the caller should return immediately
// without writing another response.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	return true
}

// parseID reads the :id path parameter. Non-positive ids parse fine and are
// answered as absent by the service.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return id, true
}

// respondError renders validation failures with their field and hands
// everything else to the ErrorHandler middleware, which logs it and answers
// with a generic 500.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		log.Debug().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("field", ve.Field).
			Msg(ve.Message)
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(ve.Field, ve.Message))
		return
	}
	_ = c.Error(err)
}
