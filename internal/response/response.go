// Package response holds the error body shared by handlers and middleware.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

var messages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

// Message is the text sent with status. Unlisted codes use the HTTP status text.
func Message(status int) string {
	if m, ok := messages[status]; ok {
		return m
	}
	return http.StatusText(status)
}

// Abort stops the chain and writes the error body for status.
func Abort(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: status, Message: Message(status)})
}
