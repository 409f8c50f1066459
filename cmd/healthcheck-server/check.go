package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
	"github.com/spf13/cobra"
)

// checkFailedError check 명령에서 헬스체크가 실패했음을 나타냅니다.
// 에러 체인은 그대로 유지하되, 사용자에게는 HTTP 응답과 같은 메시지만 보여줍니다.
type checkFailedError struct {
	err error
}

func (e *checkFailedError) Error() string { return e.err.Error() }
func (e *checkFailedError) Unwrap() error { return e.err }

// Message HTTP 에러 응답의 message 필드와 같은 문구를 반환합니다.
func (e *checkFailedError) Message() string {
	var appErr *apperrors.AppError
	if apperrors.As(e.err, &appErr) {
		return appErr.Message()
	}
	return e.err.Error()
}

// newCheckCmd 서버를 띄우지 않고 프로브를 한 번 실행해 결과를 출력하는 명령을 생성합니다.
// 성공하면 검증된 JSON을 표준 출력에 쓰고, 실패하면 HTTP 응답과 같은 메시지로 종료 코드 1을 반환합니다.
func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "프로브를 한 번 실행하고 결과를 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig, err := loadConfig(opts)
			if err != nil {
				return apperrors.Wrap(err, apperrors.InvalidInput, "환경설정 로드 실패")
			}

			// 프로브는 별도의 프로세스 그룹에서 실행되어 터미널의 인터럽트를 받지 못하므로, 직접 취소합니다.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			body, err := newChecker(appConfig).Check(ctx)
			if err != nil {
				return &checkFailedError{err: err}
			}

			fmt.Fprintln(cmd.OutOrStdout(), body)
			return nil
		},
	}
}
