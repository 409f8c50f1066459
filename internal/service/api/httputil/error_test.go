package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs 전역 로거의 출력을 JSON 형식으로 버퍼에 기록하고, 테스트 종료 시 원래 설정으로 되돌립니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	logger := applog.StandardLogger()
	prevOut, prevFormatter, prevLevel := logger.Out, logger.Formatter, logger.GetLevel()
	t.Cleanup(func() {
		applog.SetOutput(prevOut)
		applog.SetFormatter(prevFormatter)
		applog.SetLevel(prevLevel)
	})

	buf := new(bytes.Buffer)
	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	return buf
}

// fixNow 타임스탬프를 고정합니다.
func fixNow(t *testing.T, ts time.Time) {
	t.Helper()

	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
}

func TestNewErrorEnvelope(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	fixNow(t, ts)

	env := NewErrorEnvelope("Health check timed out")

	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Health check timed out", env.Message)
	assert.Equal(t, ts.UnixMilli(), env.Timestamp)
}

func TestErrorHandler(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	fixNow(t, ts)

	tests := []struct {
		name           string
		method         string
		err            error
		expectedStatus int
		expectedBody   string
		expectedLevel  string
	}{
		{
			name:           "404는 NotFound 본문",
			method:         http.MethodGet,
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "Not found"}`,
			expectedLevel:  "debug",
		},
		{
			name:           "405도 NotFound 본문",
			method:         http.MethodPost,
			err:            echo.ErrMethodNotAllowed,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "Not found"}`,
			expectedLevel:  "debug",
		},
		{
			name:           "메시지를 가진 500",
			method:         http.MethodGet,
			err:            NewInternalServerError("Health check timed out", errors.New("deadline")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"error","message":"Health check timed out","timestamp":1735787045000}`,
			expectedLevel:  "error",
		},
		{
			name:           "일반 에러는 공통 메시지",
			method:         http.MethodGet,
			err:            errors.New("database connection failed"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"error","message":"Internal server error","timestamp":1735787045000}`,
			expectedLevel:  "error",
		},
		{
			name:           "문자열이 아닌 메시지는 공통 메시지",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusInternalServerError, map[string]int{"code": 1}),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"error","message":"Internal server error","timestamp":1735787045000}`,
			expectedLevel:  "error",
		},
		{
			name:           "4xx는 상태 코드를 유지",
			method:         http.MethodGet,
			err:            echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   `{"status":"error","message":"Request Entity Too Large","timestamp":1735787045000}`,
			expectedLevel:  "warning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/unknown", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON))
			if tt.expectedStatus == http.StatusNotFound {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "로그: %s", buf.String())
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "api.error_handler", entry["component"])
			assert.Equal(t, "/unknown", entry["path"])
		})
	}
}

func TestErrorHandler_ErrorTypeFields(t *testing.T) {
	rootCause := errors.New("signal: killed")

	tests := []struct {
		name              string
		err               error
		expectedErrorType any
		expectedRootCause any
	}{
		{
			name:              "AppError 원인의 타입을 기록",
			err:               NewInternalServerError("Health check timed out", apperrors.New(apperrors.Timeout, "Health check timed out")),
			expectedErrorType: "Timeout",
		},
		{
			name:              "감싼 원인은 가장 안쪽 에러까지 기록",
			err:               NewInternalServerError("Internal server error", apperrors.Wrap(rootCause, apperrors.ExecutionFailed, "Health check script failed: ")),
			expectedErrorType: "ExecutionFailed",
			expectedRootCause: "signal: killed",
		},
		{
			name:              "AppError가 아닌 에러는 Unknown",
			err:               errors.New("database connection failed"),
			expectedErrorType: "Unknown",
		},
		{
			name: "원인이 없는 라우팅 에러는 기록하지 않음",
			err:  echo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

			ErrorHandler(tt.err, c)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "로그: %s", buf.String())
			assert.Equal(t, tt.expectedErrorType, entry["error_type"])
			assert.Equal(t, tt.expectedRootCause, entry["root_cause"])
		})
	}
}

func TestErrorHandler_Head(t *testing.T) {
	captureLogs(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/health", nil)
	rec := httptest.NewRecorder()

	ErrorHandler(echo.ErrMethodNotAllowed, e.NewContext(req, rec))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_Committed(t *testing.T) {
	captureLogs(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.String(http.StatusOK, "partial"))
	ErrorHandler(errors.New("late error"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestWriteNotFound(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, WriteNotFound(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"error": "Not found"}`, rec.Body.String())
}
