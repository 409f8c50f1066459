package probe

import (
	"context"
	"time"
)

// Checker 설정된 프로브를 실행하고 결과를 검증하는 한 번의 헬스체크를 수행합니다.
type Checker struct {
	runner *Runner

	commandPath string
	timeout     time.Duration
}

// NewChecker 새로운 Checker를 생성합니다.
func NewChecker(runner *Runner, commandPath string, timeout time.Duration) *Checker {
	if runner == nil {
		panic("Runner는 필수입니다")
	}
	if commandPath == "" {
		panic("프로브 실행 경로는 필수입니다")
	}
	if timeout <= 0 {
		panic("프로브 제한 시간은 0보다 커야 합니다")
	}

	return &Checker{
		runner:      runner,
		commandPath: commandPath,
		timeout:     timeout,
	}
}

// Check 프로브를 실행하고, 검증된 JSON 본문 또는 분류된 에러를 반환합니다.
// ctx가 취소되면 실행 중인 프로브는 강제 종료됩니다.
func (c *Checker) Check(ctx context.Context) (string, error) {
	res := c.runner.Run(ctx, c.commandPath, c.timeout)
	return Inspect(res, c.commandPath)
}
