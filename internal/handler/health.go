package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// The database decides the status code; Redis is optional and only reported.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		body := gin.H{"timestamp": time.Now().UTC().Format(time.RFC3339)}
		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			} else if n, err := worker.DLQLength(ctx, rdb, worker.QueueEmail); err == nil {
				body["email_dlq"] = n
			}
		}
		body["database"] = dbStatus
		body["redis"] = redisStatus

		status := http.StatusOK
		body["status"] = "healthy"
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
		}
		c.JSON(status, body)
	}
}
