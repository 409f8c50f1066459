package middleware

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/stretchr/testify/require"
)

// captureLogs 테스트 동안 전역 로거의 출력을 캡처합니다.
// 테스트 종료 시(Cleanup) 자동으로 원래 상태로 복구됩니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	logger := applog.StandardLogger()
	originalOut, originalFormatter, originalLevel := logger.Out, logger.Formatter, logger.GetLevel()
	t.Cleanup(func() {
		applog.SetOutput(originalOut)
		applog.SetFormatter(originalFormatter)
		applog.SetLevel(originalLevel)
	})

	buf := new(bytes.Buffer)
	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	return buf
}

// parseLogEntries 버퍼에 기록된 JSON 로그를 줄 단위로 파싱합니다.
func parseLogEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	output := strings.TrimSpace(buf.String())
	require.NotEmpty(t, output, "로그가 기록되지 않았습니다")

	var entries []map[string]any
	for _, line := range strings.Split(output, "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "로그 파싱 실패: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

// findLogEntry component가 일치하는 첫 번째 로그를 반환합니다.
func findLogEntry(t *testing.T, buf *bytes.Buffer, component string) map[string]any {
	t.Helper()

	for _, entry := range parseLogEntries(t, buf) {
		if entry["component"] == component {
			return entry
		}
	}
	require.FailNow(t, "로그를 찾을 수 없습니다", "component: %s, 로그: %s", component, buf.String())
	return nil
}
