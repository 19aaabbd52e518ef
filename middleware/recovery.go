package middleware

import (
	"log"
	"net/http"

	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Recovered from panic on %s %s: %v",
					c.Request.Method, c.Request.URL.Path, err)
				utils.TrackError("http", "panic")
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
