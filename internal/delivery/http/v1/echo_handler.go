package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go-landing-mailer/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxEchoBodyBytes = 1 << 20

// EchoResponse mirrors the submitted JSON document back to the caller
type EchoResponse struct {
	Echo      json.RawMessage `json:"echo"`
	Method    string          `json:"method"`
	Timestamp time.Time       `json:"timestamp"`
	ClientIP  string          `json:"client_ip"`
}

type EchoHandler struct{}

// NewEchoHandler registers POST /echo, a debugging aid for clients and probes
func NewEchoHandler(r gin.IRoutes) {
	handler := &EchoHandler{}
	r.POST("/echo", handler.Echo)
}

func (h *EchoHandler) Echo(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxEchoBodyBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.New(http.StatusBadRequest, "Request body could not be read", err))
		return
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		c.Error(apperror.BadRequest("Request body must be valid JSON"))
		return
	}

	c.JSON(http.StatusOK, EchoResponse{
		Echo:      json.RawMessage(body),
		Method:    c.Request.Method,
		Timestamp: time.Now().UTC(),
		ClientIP:  c.ClientIP(),
	})
}
