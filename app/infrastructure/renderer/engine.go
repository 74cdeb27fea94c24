package renderer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"sync"
	"time"

	"gametrack.gg/stats-api/app/utils/httpclients"
	"gametrack.gg/stats-api/app/utils/logger"
	"gametrack.gg/stats-api/config/environment_variables"
	"resty.dev/v3"
)

// Engine owns the lifecycle of the headless renderer process: lazy start
// on first Acquire, transparent relaunch once the process has died. The
// renderer cannot serve concurrent requests, which is why every call site
// reaches it through the admission queue; the engine itself only manages
// the process.
type Engine interface {
	Acquire(ctx context.Context) (*Handle, error)
}

// Handle is a live connection to a running renderer.
type Handle struct {
	client *resty.Client
}

// RenderRequest describes one kingdom map to draw.
type RenderRequest struct {
	Server  string `json:"server"`
	Kingdom int    `json:"kingdom"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// RenderMap renders one map and returns the PNG bytes.
func (h *Handle) RenderMap(ctx context.Context, req RenderRequest) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetDoNotParseResponse(true).
		Post("/render")
	if err != nil {
		return nil, err
	}
	defer resp.RawResponse.Body.Close()
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("renderer returned status %d", resp.StatusCode())
	}
	return io.ReadAll(resp.RawResponse.Body)
}

// ProcessEngine launches the renderer binary and talks to it over its
// local HTTP port.
type ProcessEngine struct {
	mu      sync.Mutex
	binPath string
	port    string
	cmd     *exec.Cmd
	handle  *Handle
}

func NewProcessEngine() *ProcessEngine {
	return &ProcessEngine{
		binPath: environment_variables.EnvironmentVariables.RENDERER_BIN_PATH,
		port:    environment_variables.EnvironmentVariables.RENDERER_PORT,
	}
}

// Acquire returns the current handle, launching or relaunching the
// renderer process as needed. Idempotent: a healthy process is reused.
func (e *ProcessEngine) Acquire(ctx context.Context) (*Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handle != nil && e.alive() {
		return e.handle, nil
	}

	if e.cmd != nil {
		logger.GetLogger().Warn("renderer process is gone, relaunching")
		e.cmd = nil
		e.handle = nil
	}

	cmd := exec.Command(e.binPath, "--port", e.port)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to launch renderer: %w", err)
	}
	// Reap the process so alive() can observe its exit.
	go func() { _ = cmd.Wait() }()

	client := httpclients.NewClientWithRetry("Renderer", httpclients.RetryPolicy{Attempts: 1}).
		SetBaseURL("http://127.0.0.1:" + e.port)

	if err := e.waitReady(ctx, client); err != nil {
		_ = cmd.Process.Kill()
		return nil, err
	}

	e.cmd = cmd
	e.handle = &Handle{client: client}
	logger.GetLogger().Infof("renderer launched (pid %d)", cmd.Process.Pid)
	return e.handle, nil
}

func (e *ProcessEngine) alive() bool {
	return e.cmd != nil && e.cmd.ProcessState == nil
}

func (e *ProcessEngine) waitReady(ctx context.Context, client *resty.Client) error {
	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		resp, err := client.R().SetContext(ctx).Get("/ready")
		if err == nil && resp.StatusCode() == http.StatusOK {
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
	return fmt.Errorf("renderer did not become ready on port %s", e.port)
}
