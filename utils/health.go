package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	ClinicAPI bool      `json:"clinicApi"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClient *redis.Client, clinicAPIBaseURL string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		httpClient := &http.Client{Timeout: 5 * time.Second}

		for range ticker.C {
			redisHealthy := redisClient.Ping(ctx).Err() == nil

			clinicHealthy := false
			if resp, err := httpClient.Get(clinicAPIBaseURL + "/servicios/all"); err == nil {
				resp.Body.Close()
				clinicHealthy = resp.StatusCode < http.StatusInternalServerError
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealthy,
				ClinicAPI: clinicHealthy,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
