package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is the connection-pool slice of a health report.
type PoolStats struct {
	Open       int   `json:"open"`
	InUse      int   `json:"in_use"`
	Idle       int   `json:"idle"`
	MaxOpen    int   `json:"max_open"`
	WaitCount  int64 `json:"wait_count"`
	WaitMillis int64 `json:"wait_ms"`
}

// HealthStatus reports database reachability and pool pressure. It is
// served verbatim by the health endpoint.
type HealthStatus struct {
	Status     string    `json:"status"`
	PingMillis int64     `json:"ping_ms"`
	Pool       PoolStats `json:"pool"`
}

// Health pings the database and snapshots the pool. A failed ping still
// returns a report so the handler can render the unhealthy state.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	started := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:     "unhealthy",
			PingMillis: time.Since(started).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:     "healthy",
		PingMillis: time.Since(started).Milliseconds(),
		Pool: PoolStats{
			Open:       stats.OpenConnections,
			InUse:      stats.InUse,
			Idle:       stats.Idle,
			MaxOpen:    stats.MaxOpenConnections,
			WaitCount:  stats.WaitCount,
			WaitMillis: stats.WaitDuration.Milliseconds(),
		},
	}, nil
}
