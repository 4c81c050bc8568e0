package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error              string `json:"error"`
	IncompleteSections []int  `json:"incompleteSections,omitempty"`
}

// Success sends data as a 200 response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends data as a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error sends a standard error response.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, ErrorResponse{Error: errorMessage})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// Incomplete sends a 400 response naming the sections that still have blank answers.
func Incomplete(c *gin.Context, sections []int) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:              "Please fill in all fields before submitting.",
		IncompleteSections: sections,
	})
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// UnprocessableEntity sends a 422 response for a navigation step that is not allowed.
func UnprocessableEntity(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnprocessableEntity, errorMessage)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}
