package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"error_code"`
	ErrorMsg   string `json:"error_msg"`
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

// RenderErr writes the error response. Server-side failures are logged
// with the request ID; their details are never sent to the client.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.String("error", err.ErrorMsg),
		)

		ctx.AbortWithStatusJSON(err.StatusCode, &Err{
			StatusCode: err.StatusCode,
			ErrorCode:  err.ErrorCode,
			ErrorMsg:   "something went wrong",
		})

		return
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  "BAD_REQUEST",
		ErrorMsg:   err.Error(),
	}
}

// ErrWrongCredentials is deliberately generic. It never reveals whether
// the account exists.
func ErrWrongCredentials() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorCode:  "WRONG_CREDENTIALS",
		ErrorMsg:   "invalid username or password",
	}
}

func ErrForbidden() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		ErrorCode:  "FORBIDDEN",
		ErrorMsg:   "insufficient permission",
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorCode:  "NOT_FOUND",
		ErrorMsg:   err.Error(),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		ErrorCode:  "CONFLICT",
		ErrorMsg:   err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  "INTERNAL_ERROR",
		ErrorMsg:   err.Error(),
	}
}
