package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// Abort maps err onto the error taxonomy. Server errors never leak msg
// details beyond the generic message.
func Abort(c *gin.Context, err error, msg string) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}

	status, code := Classify(err)
	resp := Response{Status: status}
	resp.Error.Code = code
	if status >= http.StatusInternalServerError {
		resp.Error.Message = "Internal server error"
	} else {
		resp.Error.Message = msg
	}

	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// AbortWithCode is for failures decided outside the use cases, such as
// authentication, where Classify has nothing to match.
func AbortWithCode(c *gin.Context, status int, code string, err error, msg string) {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	abort(c, err, resp)
}
