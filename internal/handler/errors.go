package handler

import (
	"net/http"

	"chatbox-backend/internal/services"
	"chatbox-backend/internal/transport/httpdto"
	"chatbox-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// writeError converts a service error into the HTTP status + JSON body at
// the operation boundary. Internal errors are logged and surfaced as a
// generic message; their detail never reaches the client.
func writeError(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		if l := logger.GetGlobalLogger(); l != nil {
			l.Errorf("request failed: %s", err)
		}
		message = "Internal Server Error"
	}
	c.JSON(status, httpdto.NewErrorResponse(http.StatusText(status), message))
}
