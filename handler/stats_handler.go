package handler

import (
	"time"

	"cloudcache/utils"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// StatsHandler reports process and host health for operators.
func StatsHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"uptime_seconds": int64(time.Since(startTime).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
