//go:build unix

package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ProcessGone pid 프로세스가 더 이상 실행 중이지 않으면 true를 반환합니다.
//
// 부모가 먼저 종료되어 아직 회수되지 않은 좀비 프로세스도 종료된 것으로 봅니다.
// 좀비 여부는 /proc이 있는 시스템(Linux)에서만 확인합니다.
func ProcessGone(pid int) bool {
	if errors.Is(syscall.Kill(pid, 0), syscall.ESRCH) {
		return true
	}

	stat, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return errors.Is(err, os.ErrNotExist) && errors.Is(syscall.Kill(pid, 0), syscall.ESRCH)
	}

	// 형식: "pid (comm) state ...", comm에 괄호가 포함될 수 있으므로 마지막 ')'를 기준으로 합니다.
	i := bytes.LastIndexByte(stat, ')')
	return i >= 0 && i+2 < len(stat) && stat[i+2] == 'Z'
}
