package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "project-catalog/internal/errors"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// Error maps a service error to an HTTP status by its error code.
func Error(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status := httpStatus(code)

	resp := APIResponse{
		Status: "error",
		Code:   string(code),
		Error:  err.Error(),
	}
	if status == http.StatusInternalServerError {
		resp.Error = "internal server error"
	}
	c.JSON(status, resp)
}

func httpStatus(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrConflict:
		return http.StatusConflict
	case apperrors.ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
