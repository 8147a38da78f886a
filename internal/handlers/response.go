package handlers

import "github.com/gin-gonic/gin"

// Every endpoint answers the same envelope: {success, data?, message?, error?}.

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func respondDataMsg(c *gin.Context, code int, data any, message string) {
	c.JSON(code, gin.H{"success": true, "data": data, "message": message})
}

func respondMsg(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "error": msg})
}

func abortError(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "error": msg})
}
