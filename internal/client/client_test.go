package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const statsFixture = `{
	"current_time": "2025-01-15 14:30:00",
	"cpu": 37.5,
	"ram": {"total": 68719476736, "percent": 41.2},
	"has_gpu": true,
	"gpu": [{
		"name": "NVIDIA GeForce RTX 4090",
		"load": 72.0,
		"memoryUsed": 12884901888,
		"memoryPercent": 53.7,
		"temperature": 61.0,
		"fanSpeed": 38.0,
		"powerDraw": 285.5
	}],
	"top_cpu": [
		{"pid": 1234, "name": "ollama", "cpu_percent": 85.2, "cmdline": "/usr/bin/ollama serve"}
	],
	"top_memory": [
		{"pid": 1234, "name": "ollama", "memory_usage": 4294967296, "memory_percent": 6.25, "cmdline": "/usr/bin/ollama serve"}
	],
	"top_gpu_processes": [
		{"pid": 1234, "name": "ollama", "memory_used": 11811160064, "cmdline": "/usr/bin/ollama serve"}
	],
	"ollama_processes": {"models": [
		{"name": "llama3:70b", "size": 39703740416, "size_vram": 39703740416, "expires_at": "2025-01-15T14:35:00Z"}
	]}
}`

// newTestClient creates a DefaultClient pointed at the given test server URL.
func newTestClient(t *testing.T, url string) *DefaultClient {
	t.Helper()
	c, err := NewDefaultClient(ClientConfig{
		URL:            url,
		RequestTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewDefaultClient: %v", err)
	}
	return c
}

func TestGetStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %q", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(statsFixture))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	stats, err := c.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.CPU != 37.5 {
		t.Errorf("CPU = %v, want 37.5", stats.CPU)
	}
	if stats.RAM.Total != 68719476736 {
		t.Errorf("RAM.Total = %d, want 68719476736", stats.RAM.Total)
	}
	if !stats.HasGPU {
		t.Error("HasGPU = false, want true")
	}
	if len(stats.GPU) != 1 {
		t.Fatalf("len(GPU) = %d, want 1", len(stats.GPU))
	}
	if stats.GPU[0].Name != "NVIDIA GeForce RTX 4090" {
		t.Errorf("GPU[0].Name = %q", stats.GPU[0].Name)
	}
	if stats.GPU[0].PowerDraw != 285.5 {
		t.Errorf("GPU[0].PowerDraw = %v, want 285.5", stats.GPU[0].PowerDraw)
	}
	if len(stats.TopCPU) != 1 || stats.TopCPU[0].CPUPercent != 85.2 {
		t.Errorf("TopCPU = %+v", stats.TopCPU)
	}
	if len(stats.TopMemory) != 1 || stats.TopMemory[0].MemoryUsage != 4294967296 {
		t.Errorf("TopMemory = %+v", stats.TopMemory)
	}
	if len(stats.OllamaProcesses.Models) != 1 {
		t.Fatalf("len(Models) = %d, want 1", len(stats.OllamaProcesses.Models))
	}
	if m := stats.OllamaProcesses.Models[0]; m.Name != "llama3:70b" || m.SizeVRAM != 39703740416 {
		t.Errorf("Models[0] = %+v", m)
	}
}

func TestGetStats_MissingSectionsAreEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current_time":"now","cpu":1.0,"ram":{"total":1024,"percent":2.0},"has_gpu":false}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	stats, err := c.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.HasGPU {
		t.Error("HasGPU = true, want false")
	}
	if len(stats.GPU) != 0 || len(stats.TopCPU) != 0 || len(stats.OllamaProcesses.Models) != 0 {
		t.Errorf("optional sections not empty: %+v", stats)
	}
}

func TestGetStats_HTTPErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetStats(context.Background())
	if err == nil {
		t.Fatal("expected error for status 500")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error is %T, want *FetchError", err)
	}
	if fe.Kind != KindHTTP {
		t.Errorf("Kind = %v, want KindHTTP", fe.Kind)
	}
	if fe.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", fe.Status)
	}
}

func TestGetStats_ParseErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cpu": not json`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetStats(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed body")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error is %T, want *FetchError", err)
	}
	if fe.Kind != KindParse {
		t.Errorf("Kind = %v, want KindParse", fe.Kind)
	}
}

func TestGetStats_NetworkErrorKind(t *testing.T) {
	// Point at a server that is already closed so the connection is refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	_, err := c.GetStats(context.Background())
	if err == nil {
		t.Fatal("expected error for refused connection")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error is %T, want *FetchError", err)
	}
	if fe.Kind != KindNetwork {
		t.Errorf("Kind = %v, want KindNetwork", fe.Kind)
	}
}

func TestGetStats_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := newTestClient(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetStats(ctx)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindNetwork {
		t.Errorf("err = %v, want *FetchError with KindNetwork", err)
	}
}

func TestNewDefaultClient_RequiresURL(t *testing.T) {
	if _, err := NewDefaultClient(ClientConfig{}); err == nil {
		t.Fatal("expected error for empty URL")
	}
}

func TestErrorKindString(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{KindNetwork, "network"},
		{KindHTTP, "http"},
		{KindParse, "parse"},
		{ErrorKind(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("String(%d) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
