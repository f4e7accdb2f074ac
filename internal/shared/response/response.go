package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope every endpoint returns.
// Clients branch on Success without inspecting status codes.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// Success responses

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

func Paginated(c *gin.Context, data interface{}, count int, pagination *Pagination) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Count:      &count,
		Pagination: pagination,
	})
}

// Error responses

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error:   message,
	})
}

// ValidationFailed carries per-field messages alongside the summary.
func ValidationFailed(c *gin.Context, message string, errs []string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
		Error:   message,
		Errors:  errs,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
