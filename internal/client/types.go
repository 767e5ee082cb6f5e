package client

// Stats is the JSON document returned by the stats endpoint.
// Optional sections (gpu, top_gpu_processes, ollama_processes) may be empty
// or absent; the dashboard renders placeholder panels for them.
type Stats struct {
	CurrentTime     string           `json:"current_time"`
	CPU             float64          `json:"cpu"`
	RAM             RAMStats         `json:"ram"`
	HasGPU          bool             `json:"has_gpu"`
	GPU             []GPUStats       `json:"gpu"`
	TopCPU          []ProcessInfo    `json:"top_cpu"`
	TopMemory       []ProcessInfo    `json:"top_memory"`
	TopGPUProcesses []GPUProcessInfo `json:"top_gpu_processes"`
	OllamaProcesses OllamaProcesses  `json:"ollama_processes"`
}

// RAMStats holds system memory figures.
type RAMStats struct {
	Total   int64   `json:"total"`
	Percent float64 `json:"percent"`
}

// GPUStats holds per-GPU metrics. MemoryUsed is in bytes; the collector
// reports it as a float (MiB * 1024 * 1024).
type GPUStats struct {
	Name          string  `json:"name"`
	Load          float64 `json:"load"`
	MemoryUsed    float64 `json:"memoryUsed"`
	MemoryPercent float64 `json:"memoryPercent"`
	Temperature   float64 `json:"temperature"`
	FanSpeed      float64 `json:"fanSpeed"`
	PowerDraw     float64 `json:"powerDraw"`
}

// ProcessInfo is one entry of the top_cpu or top_memory ranked lists.
// CPUPercent is populated for top_cpu entries; MemoryUsage and MemoryPercent
// for top_memory entries.
type ProcessInfo struct {
	PID           int     `json:"pid"`
	Name          string  `json:"name"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryUsage   int64   `json:"memory_usage"`
	MemoryPercent float64 `json:"memory_percent"`
	Cmdline       string  `json:"cmdline"`
}

// GPUProcessInfo is one entry of the top_gpu_processes list.
type GPUProcessInfo struct {
	PID        int    `json:"pid"`
	Name       string `json:"name"`
	MemoryUsed int64  `json:"memory_used"`
	Cmdline    string `json:"cmdline"`
}

// OllamaProcesses mirrors the Ollama /api/ps response embedded in the stats
// payload.
type OllamaProcesses struct {
	Models []OllamaModel `json:"models"`
}

// OllamaModel describes one loaded model. Sizes are in bytes; ExpiresAt is an
// ISO-8601 timestamp.
type OllamaModel struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	SizeVRAM  int64  `json:"size_vram"`
	ExpiresAt string `json:"expires_at"`
}
