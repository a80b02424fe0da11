// Package httperr defines the JSON error envelope used when a request cannot
// be served at all, such as the room catalog being unreachable. Field-level
// validation problems use their own response shape and never come through
// here.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope on the wire. Status travels only in the
// HTTP line, not the body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and stops the handler chain. The
// underlying err is attached to the context for the request log; msg is the
// client-facing text.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{Err: err, Type: gin.ErrorTypePublic, Meta: resp})
	c.AbortWithStatusJSON(status, resp)
}
