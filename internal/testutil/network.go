// Package testutil 여러 패키지의 테스트에서 공통으로 사용하는 헬퍼를 제공합니다.
package testutil

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

// GetFreePort 테스트용으로 사용 가능한 임의의 포트를 반환합니다.
func GetFreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err, "사용 가능한 포트를 가져오는데 실패했습니다")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// OccupyPort 임의의 포트를 점유한 Listener를 반환합니다. 테스트 종료 시 자동으로 닫힙니다.
func OccupyPort(t testing.TB) (net.Listener, int) {
	t.Helper()

	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err, "포트를 점유하는데 실패했습니다")
	t.Cleanup(func() { _ = l.Close() })

	return l, l.Addr().(*net.TCPAddr).Port
}
