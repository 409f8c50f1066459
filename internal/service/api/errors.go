package api

import (
	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
)

// newErrListenFailed 포트 바인딩에 실패했을 때의 에러를 생성합니다.
func newErrListenFailed(port int, cause error) error {
	return apperrors.Wrapf(cause, apperrors.System, "API 서비스 > %d 포트를 열 수 없습니다", port)
}
