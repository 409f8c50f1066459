package probe

import (
	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
)

// 클라이언트 응답에 그대로 실리는 메시지입니다.
const (
	msgTimedOut          = "Health check timed out"
	msgLaunchFailedFmt   = "Health check error: %v"
	msgNonZeroExitFmt    = "Health check script failed: %s"
	msgInvalidJSONOutput = "Invalid JSON output from health check"
)

// ErrInvalidOutput 프로브가 정상 종료했지만 출력이 올바른 JSON이 아닐 때 반환됩니다.
var ErrInvalidOutput = apperrors.New(apperrors.ParsingFailed, msgInvalidJSONOutput)

// newErrTimedOut 프로브가 제한 시간 안에 끝나지 않았을 때의 에러를 생성합니다.
func newErrTimedOut() error {
	return apperrors.New(apperrors.Timeout, msgTimedOut)
}

// newErrLaunchFailed 프로브 프로세스를 시작하지 못했을 때(실행 파일 없음, 권한 없음 등)의 에러를 생성합니다.
// 원인은 메시지에만 담기며, 상세 내용은 Runner가 실행 시점에 로그로 남깁니다.
func newErrLaunchFailed(cause error) error {
	return apperrors.Newf(apperrors.System, msgLaunchFailedFmt, cause)
}

// newErrNonZeroExit 프로브가 0이 아닌 종료 코드로 끝났을 때의 에러를 생성합니다. 메시지에는 stderr가 그대로 포함됩니다.
func newErrNonZeroExit(stderr string) error {
	return apperrors.Newf(apperrors.ExecutionFailed, msgNonZeroExitFmt, stderr)
}
