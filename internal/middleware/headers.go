package middleware

import "github.com/gin-gonic/gin"

const (
	allowHeaders = "Content-Type, Authorization,true"
	allowMethods = "GET,PATCH,POST,DELETE,OPTIONS"
)

// AccessControlHeaders adds the allowed headers and methods to every
// response, not only to preflight requests.
func AccessControlHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Add("Access-Control-Allow-Headers", allowHeaders)
		h.Add("Access-Control-Allow-Methods", allowMethods)
		c.Next()
	}
}
