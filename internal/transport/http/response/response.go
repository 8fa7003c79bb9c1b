package response

import "github.com/gin-gonic/gin"

// Detail is the single error/notice envelope: {"detail": "..."}.
type Detail struct {
	Detail string `json:"detail"`
}

// Abort writes the status and a fixed detail message, stopping the chain.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Detail{Detail: msg})
}

// JSON writes a detail notice without aborting (e.g. delete confirmations).
func JSON(c *gin.Context, status int, msg string) {
	c.JSON(status, Detail{Detail: msg})
}
