package httperr

import (
	"net/http"

	"pix-funnel/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

// Response is the JSON error body of the query API. Webhooks never use it;
// they always acknowledge with 200.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

// AbortWithError keeps err on the context for the logging middleware and
// answers with msg only.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}
	resp := newResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func Unauthorized(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
}

func NotFound(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusNotFound, err, msg, nil)
}

func Internal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
}

// InternalResponse is the body written when a panic is recovered.
func InternalResponse() Response {
	return newResponse(http.StatusInternalServerError, msgInternal, nil)
}
