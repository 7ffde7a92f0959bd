package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

const slowRequest = 200 * time.Millisecond

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		if latency > slowRequest {
			log.Printf("[PERF] slow request: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
