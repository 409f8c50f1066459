// Package probe 외부 헬스체크 프로브를 실행하고 그 출력을 검증합니다.
//
// Runner는 요청마다 프로브 프로세스를 하나 실행하고, 제한 시간이 지나거나 ctx가 취소되면 프로세스 그룹 전체를
// 강제 종료한 뒤 반드시 회수(Wait)합니다. 실행 결과는 에러가 아닌 Result 값으로 전달되며,
// Inspect가 이를 응답 본문 또는 분류된 에러로 변환합니다.
package probe

import (
	"context"
	"errors"
	"os/exec"
	"time"

	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/darkkaiser/healthcheck-server/pkg/strutil"
	"github.com/google/uuid"
)

const (
	component = "probe.runner"

	// maxLoggedStderrRunes 실패 로그에 남기는 stderr 최대 길이
	maxLoggedStderrRunes = 2000
)

// errRunCanceled 제한 시간 전에 ctx가 취소되어 프로브를 강제 종료했을 때 Result.Err에 담깁니다.
var errRunCanceled = errors.New("health check run canceled")

// Runner 프로브 프로세스를 실행합니다. 상태가 없으므로 여러 고루틴에서 동시에 사용할 수 있습니다.
type Runner struct {
	executor commandExecutor
}

// NewRunner stdout/stderr를 각각 maxOutputSize 바이트까지 캡처하는 Runner를 생성합니다.
func NewRunner(maxOutputSize int) *Runner {
	return &Runner{
		executor: &defaultCommandExecutor{limit: maxOutputSize},
	}
}

// Run commandPath를 인자 없이 실행하고 종료될 때까지 기다립니다.
//
// timeout이 지나면 TimedOut, 그 전에 ctx가 취소되면 errRunCanceled로 끝나며 어느 쪽이든 프로세스 그룹은 종료됩니다.
// 클라이언트 연결 종료로 프로브가 중단되지 않아야 하는 호출자는 요청 컨텍스트에서 취소를 분리해서 넘겨야 합니다.
// 실행 실패를 포함한 모든 결과는 Result에 담겨 반환되고 패닉이나 에러 반환은 없습니다.
func (r *Runner) Run(ctx context.Context, commandPath string, timeout time.Duration) Result {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res := Result{
		ExitCode: -1,
		RunID:    uuid.NewString(),
	}

	startedAt := time.Now()

	proc, err := r.executor.Start(runCtx, commandPath)
	if err != nil {
		if ctx.Err() != nil {
			err = errRunCanceled
		}
		res.Err = err
		res.Duration = time.Since(startedAt)
		logResult(commandPath, res)
		return res
	}

	// 타임아웃으로 강제 종료된 경우에도 Wait를 호출해야 좀비 프로세스가 남지 않습니다.
	waitErr := proc.Wait()

	res.Stdout = proc.Stdout()
	res.Stderr = proc.Stderr()
	res.Duration = time.Since(startedAt)

	var exitErr *exec.ExitError
	switch {
	case waitErr != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.TimedOut = true
	case waitErr != nil && ctx.Err() != nil:
		res.Err = errRunCanceled
	case waitErr == nil:
		res.ExitCode = proc.ExitCode()
	case errors.Is(waitErr, exec.ErrWaitDelay):
		// 프로세스는 정상 종료했지만 자손 프로세스가 출력 파이프를 붙잡고 있었습니다.
		res.ExitCode = proc.ExitCode()
	case errors.As(waitErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.Err = waitErr
	}

	logResult(commandPath, res)

	return res
}

func logResult(commandPath string, res Result) {
	fields := applog.Fields{
		"run_id":       res.RunID,
		"command_path": commandPath,
		"exit_code":    res.ExitCode,
		"timed_out":    res.TimedOut,
		"duration_ms":  res.Duration.Milliseconds(),
	}

	if !res.Failed() {
		applog.WithComponentAndFields(component, fields).Debug("헬스체크 프로브 실행 완료")
		return
	}

	if res.Stderr != "" {
		fields["stderr"] = strutil.Truncate(res.Stderr, maxLoggedStderrRunes)
	}

	entry := applog.WithComponentAndFields(component, fields)
	switch {
	case res.TimedOut:
		entry.Warn("헬스체크 프로브 실행 시간 초과: 프로세스 그룹을 강제 종료했습니다")
	case errors.Is(res.Err, errRunCanceled):
		entry.Warn("헬스체크 프로브 실행 취소: 프로세스 그룹을 강제 종료했습니다")
	case res.Err != nil:
		entry.WithError(res.Err).Warn("헬스체크 프로브 실행 실패")
	default:
		entry.Warn("헬스체크 프로브 비정상 종료")
	}
}
