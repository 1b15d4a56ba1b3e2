package service

import (
	"time"

	"heart-haven/config"
	"heart-haven/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var serverStart = time.Now()

// Status is a snapshot of host and process health for the admin panel.
type Status struct {
	T       time.Time `json:"t"`
	Cpu     float64   `json:"cpu"`
	Mem     MemStatus `json:"mem"`
	Uptime  uint64    `json:"uptime"`
	Version string    `json:"version"`
}

type MemStatus struct {
	Current uint64 `json:"current"`
	Total   uint64 `json:"total"`
}

// ServerService reports process status and buffered logs.
type ServerService struct{}

func NewServerService() *ServerService {
	return &ServerService{}
}

// GetStatus samples cpu and memory usage. Failures degrade to zero values
// rather than failing the whole snapshot.
func (s *ServerService) GetStatus() *Status {
	status := &Status{
		T:       time.Now(),
		Uptime:  uint64(time.Since(serverStart).Seconds()),
		Version: config.GetVersion(),
	}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	return status
}

// GetLogs returns up to count buffered log lines at or below the level.
func (s *ServerService) GetLogs(count int, level string) []string {
	return logger.GetLogs(count, level)
}
