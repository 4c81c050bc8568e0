package utils

import (
	"github.com/gin-gonic/gin"
)

// BindJSON binds the request body to obj, checking any `binding` tags.
// If binding fails, it sends a BadRequest response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}
