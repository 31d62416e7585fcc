package server

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	OK     bool    `json:"ok"`
	Uptime float64 `json:"uptime"`
}

// healthHandler reports liveness and process uptime in seconds.
func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		OK:     true,
		Uptime: time.Since(s.startedAt).Seconds(),
	})
}

// systemHealthHandler collects host-level metrics for operators.
func (s *Server) systemHealthHandler(c echo.Context) error {
	// 1. Memory Stats
	v, err := mem.VirtualMemory()
	if err != nil {
		log.Warn().Err(err).Msg("systemHealthHandler: memory stats unavailable")
		v = &mem.VirtualMemoryStat{}
	}

	// 2. CPU Usage since the previous call (non-blocking)
	cpuUsage := 0.0
	if cpuPercent, err := cpu.Percent(0, false); err == nil && len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	// 3. Host/Runtime Info
	hInfo, err := host.Info()
	if err != nil {
		log.Warn().Err(err).Msg("systemHealthHandler: host info unavailable")
		hInfo = &host.InfoStat{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok": true,
		"runtime": map[string]interface{}{
			"uptime_seconds": time.Since(s.startedAt).Seconds(),
			"start_time":     s.startedAt.Format(time.RFC3339),
			"os":             hInfo.OS,
			"platform":       hInfo.Platform,
			"arch":           hInfo.KernelArch,
			"hostname":       hInfo.Hostname,
			"goroutines":     runtime.NumGoroutine(),
		},
		"cpu": map[string]interface{}{
			"usage_percent": fmt.Sprintf("%.2f%%", cpuUsage),
			"cores":         runtime.NumCPU(),
		},
		"memory": map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(v.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(v.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", v.UsedPercent),
		},
	})
}
