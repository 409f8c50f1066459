package api

import (
	"context"
	"sync"

	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
	"github.com/darkkaiser/healthcheck-server/internal/service/api/constants"
	"github.com/darkkaiser/healthcheck-server/internal/service/api/handler/health"
	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
)

// errServiceStopping 서비스 종료가 시작된 뒤 들어온 헬스체크 요청에 반환됩니다.
var errServiceStopping = apperrors.New(apperrors.System, constants.ErrMsgServerShuttingDown)

// inflightChecker 서비스 수명 동안 실행되는 헬스체크를 추적합니다.
//
// 클라이언트가 연결을 끊어도 헬스체크는 중단되지 않도록 요청 컨텍스트의 취소를 분리하고,
// 대신 서비스 종료(stop) 시 남아 있는 실행을 모두 취소한 뒤 프로세스가 회수될 때까지 기다립니다.
type inflightChecker struct {
	checker health.HealthChecker

	stopCtx context.Context
	stopFn  context.CancelFunc

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

var _ health.HealthChecker = (*inflightChecker)(nil)

func newInflightChecker(checker health.HealthChecker) *inflightChecker {
	stopCtx, stopFn := context.WithCancel(context.Background())

	return &inflightChecker{
		checker: checker,

		stopCtx: stopCtx,
		stopFn:  stopFn,
	}
}

func (c *inflightChecker) Check(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return "", errServiceStopping
	}
	c.wg.Add(1)
	c.mu.Unlock()

	defer c.wg.Done()

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	stop := context.AfterFunc(c.stopCtx, cancel)
	defer stop()

	return c.checker.Check(runCtx)
}

// stop 새 헬스체크를 거부하고, 실행 중인 헬스체크를 취소한 뒤 모두 반환될 때까지 기다립니다.
func (c *inflightChecker) stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()

	c.stopFn()
	c.wg.Wait()

	applog.WithComponent(constants.ComponentService).Debug(constants.LogMsgServiceInflightChecksStopped)
}
