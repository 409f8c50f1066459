//go:build unix

package probe

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// configureProcessGroup 프로세스를 새 프로세스 그룹의 리더로 실행하고,
// 컨텍스트 만료 시 그룹 전체에 SIGKILL을 보내도록 설정합니다.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	cmd.Cancel = func() error {
		// 음수 PID는 프로세스 그룹을 의미합니다.
		err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		if errors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
}
