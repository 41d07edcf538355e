package utils

import "github.com/gin-gonic/gin"

// Identity helpers over the keys set by the auth middlewares.

func UserIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userId")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func UserNameFromCtx(c *gin.Context) string {
	return c.GetString("name")
}

func EmailFromCtx(c *gin.Context) string {
	return c.GetString("email")
}
