package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error body every endpoint returns. Detail carries
// optional structured context, such as the blocking rental on a booking
// conflict.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"conflict,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
