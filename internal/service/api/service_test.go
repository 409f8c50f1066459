package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/healthcheck-server/internal/config"
	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
	"github.com/darkkaiser/healthcheck-server/internal/pkg/version"
	"github.com/darkkaiser/healthcheck-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

func newTestAppConfig(port int) *config.AppConfig {
	appConfig := &config.AppConfig{}
	appConfig.Probe.CommandPath = "/usr/local/bin/global-health-check.sh"
	appConfig.Probe.Timeout = 10 * time.Second
	appConfig.HTTPServer.ListenPort = port
	appConfig.HTTPServer.ShutdownTimeout = 5 * time.Second
	return appConfig
}

// doGet Keep-Alive 연결을 남기지 않는 클라이언트로 요청을 보내고 상태 코드와 본문을 반환합니다.
func doGet(port int, path string) (int, string, error) {
	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}

	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d%s", port, path))
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), err
}

func get(t *testing.T, port int, path string) (int, string) {
	t.Helper()

	status, body, err := doGet(port, path)
	require.NoError(t, err)
	return status, body
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewService(t *testing.T) {
	appConfig := newTestAppConfig(9999)
	checker := &stubHealthChecker{}
	buildInfo := version.Info{Version: "1.2.3"}

	service := NewService(appConfig, checker, buildInfo)

	assert.Equal(t, appConfig, service.appConfig)
	assert.Equal(t, checker, service.healthChecker)
	assert.Equal(t, buildInfo, service.buildInfo)
	assert.False(t, service.running, "초기 상태는 running=false여야 함")

	assert.PanicsWithValue(t, "AppConfig는 필수입니다", func() { NewService(nil, checker, buildInfo) })
	assert.PanicsWithValue(t, "HealthChecker는 필수입니다", func() { NewService(appConfig, nil, buildInfo) })
}

func TestService_setupServer(t *testing.T) {
	appConfig := newTestAppConfig(9999)
	appConfig.Debug = true
	appConfig.Probe.Timeout = 30 * time.Second

	e := NewService(appConfig, &stubHealthChecker{}, version.Info{}).setupServer(&stubHealthChecker{})

	assert.True(t, e.Debug)
	assert.Equal(t, 40*time.Second, e.Server.WriteTimeout)

	routes := make(map[string]bool)
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, expected := range []string{"GET /", "GET /health", "GET /ping", "GET /version"} {
		assert.True(t, routes[expected], "%s 라우트가 등록되어야 함", expected)
	}
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestService_StartAndShutdown(t *testing.T) {
	port := testutil.GetFreePort(t)
	checker := &stubHealthChecker{body: `{"status":"ok"}`}
	service := NewService(newTestAppConfig(port), checker, version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, service.Start(ctx, wg))

	// Start가 반환되면 이미 포트가 열려 있으므로 바로 요청할 수 있습니다.
	status, body := get(t, port, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `{"status":"ok"}`, body)

	status, body = get(t, port, "/ping")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body)

	status, body = get(t, port, "/nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, `{"error": "Not found"}`, body)

	assert.Equal(t, int32(1), checker.calls.Load())

	cancel()
	wg.Wait()

	service.runningMu.Lock()
	assert.False(t, service.running, "종료 후 running=false여야 함")
	service.runningMu.Unlock()
}

func TestService_StartTwice(t *testing.T) {
	port := testutil.GetFreePort(t)
	service := NewService(newTestAppConfig(port), &stubHealthChecker{}, version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, service.Start(ctx, wg))

	// 두 번째 Start는 아무것도 하지 않고 Done만 호출합니다.
	wg.Add(1)
	require.NoError(t, service.Start(ctx, wg))

	cancel()
	wg.Wait()
}

func TestService_StartPortInUse(t *testing.T) {
	_, port := testutil.OccupyPort(t)
	service := NewService(newTestAppConfig(port), &stubHealthChecker{}, version.Info{})

	wg := &sync.WaitGroup{}
	wg.Add(1)

	err := service.Start(context.Background(), wg)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.System))
	assert.Contains(t, err.Error(), fmt.Sprintf("%d", port))
	assert.False(t, service.running)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start 실패 시에도 WaitGroup.Done이 호출되어야 합니다")
	}
}

func TestService_ShutdownWaitsForInflightRequest(t *testing.T) {
	port := testutil.GetFreePort(t)
	release := make(chan struct{})
	checker := &blockingHealthChecker{started: make(chan struct{}), release: release}
	service := NewService(newTestAppConfig(port), checker, version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, service.Start(ctx, wg))

	type result struct {
		status int
		body   string
		err    error
	}
	results := make(chan result, 1)
	go func() {
		status, body, err := doGet(port, "/health")
		results <- result{status, body, err}
	}()

	<-checker.started
	cancel()

	// 진행 중인 요청이 끝나야 Shutdown이 완료됩니다.
	time.Sleep(100 * time.Millisecond)
	close(release)

	res := <-results
	require.NoError(t, res.err)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, `{"done":true}`, res.body)

	wg.Wait()
}

type blockingHealthChecker struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingHealthChecker) Check(_ context.Context) (string, error) {
	close(b.started)
	<-b.release
	return `{"done":true}`, nil
}

// =============================================================================
// Error Handling Tests
// =============================================================================

func TestService_handleServerError(t *testing.T) {
	service := NewService(newTestAppConfig(9999), &stubHealthChecker{}, version.Info{})

	assert.NotPanics(t, func() {
		service.handleServerError(nil)
		service.handleServerError(http.ErrServerClosed)
		service.handleServerError(assert.AnError)
	})
}
