package jwt

import (
	"github.com/gin-gonic/gin"
)

func GetAdminPayload(c *gin.Context) (adminPayload *Claims, exist bool) {
	payload, _ := c.Get("payload")
	adminPayload, exist = payload.(*Claims)
	return
}
