package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

// Type tags every envelope, mirroring the SGI API convention the frontends
// already consume.
type Type string

const (
	TypeSuccess Type = "SUCCESS"
	TypeError   Type = "ERROR"
)

// Envelope is the common response contract: {type, data, message}.
type Envelope struct {
	Type    Type        `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// JSON sends a success envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Type: TypeSuccess, Data: data})
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error envelope converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Type: TypeError, Message: appErr.Message, Data: gin.H{"code": appErr.Code}})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
