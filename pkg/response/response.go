package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the payload as-is. The ShareIt wire format is the
// bare entity DTO, not an envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 with the payload as-is.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends the given status with an {"error": message} body.
func Error(c *gin.Context, status int, err error) {
	c.JSON(status, ErrResp{Error: err.Error()})
}

// BadRequest sends 400 with an {"error": message} body.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, err)
}

// InternalError sends 500 with a generic body; the real cause stays in
// the logs.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: DefaultErrorMessage})
}

// Raw relays a status code and a pre-encoded JSON body untouched. Used by
// the gateway tier to pass server responses through verbatim.
func Raw(c *gin.Context, status int, body []byte) {
	c.Data(status, ContentTypeJSON, body)
}
