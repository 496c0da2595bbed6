package response

import (
	"errors"
	"net/http"

	"ajcc-portal/config"
	"ajcc-portal/internal/global/logger"

	"github.com/gin-gonic/gin"
)

type ResponseBody struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// Success writes the uniform envelope with code 200. An optional single value
// becomes the data field.
func Success(c *gin.Context, data ...interface{}) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Created is Success with a 201 status, for resource creation endpoints.
func Created(c *gin.Context, data ...interface{}) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusCreated, body)
}

// Fail converts err into the envelope. Unknown error types are masked as a
// generic internal error; the original is kept in the context for Sentry.
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrInternal.WithOrigin(err)
	}

	c.Set(ErrorContextKey, e)

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = gin.H{"origin": e.Origin}
	}
	c.JSON(e.Status, body)
}

// Recovery is installed via middleware.Recovery; it turns a panic into a 500
// response and logs the panic value with the request path.
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("panic recovered",
			"panic", r,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ResponseBody{
			Code: ErrInternal.Code,
			Msg:  ErrInternal.Message,
		})
	}
}
