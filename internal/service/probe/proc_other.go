//go:build !unix

package probe

import "os/exec"

// configureProcessGroup 프로세스 그룹을 지원하지 않는 플랫폼에서는 exec 기본 동작(직접 자식만 Kill)을 사용합니다.
func configureProcessGroup(_ *exec.Cmd) {}
