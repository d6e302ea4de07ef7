package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/atahmasb/trivia-api/internal/response"
	"github.com/atahmasb/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

func abortWithStatus(c *gin.Context, status int) {
	response.Abort(c, status)
}

func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindBadRequest:
		return http.StatusBadRequest
	case services.KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(services.KindOf(err))
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	abortWithStatus(c, status)
}

// NotFound and MethodNotAllowed answer unmatched routes with the error body.
func NotFound(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// FlexibleID decodes a JSON number or a numeric string. Browser clients
// often send ids taken from object keys, which are strings.
type FlexibleID uint

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	n, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", b)
	}
	*f = FlexibleID(n)
	return nil
}
