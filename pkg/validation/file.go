package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateExecutable 지정된 경로가 현재 실행 가능한 일반 파일인지 검증합니다.
//
// 심볼릭 링크는 가리키는 대상을 기준으로 판단합니다. 실행 권한은 소유자, 그룹, 기타 중 하나라도
// 실행 비트가 있으면 통과하므로, 실제 실행 가능 여부는 프로세스 권한에 따라 달라질 수 있습니다.
func ValidateExecutable(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("파일 경로가 비어 있습니다")
	}

	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("파일이 존재하지 않습니다 (path=%q)", path)
		}
		return fmt.Errorf("파일 정보를 확인하는 중 오류가 발생했습니다 (path=%q): %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("해당 경로는 디렉터리입니다 (path=%q)", path)
	}

	// 소켓, 파이프, 디바이스 파일 등은 실행 대상이 아닙니다.
	if !info.Mode().IsRegular() {
		return fmt.Errorf("해당 경로는 일반 파일이어야 합니다 (path=%q, mode=%s)", path, info.Mode())
	}

	if info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("파일에 실행 권한이 없습니다 (path=%q, mode=%s)", path, info.Mode().Perm())
	}

	return nil
}
