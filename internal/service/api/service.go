package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/darkkaiser/healthcheck-server/internal/config"
	"github.com/darkkaiser/healthcheck-server/internal/pkg/version"
	"github.com/darkkaiser/healthcheck-server/internal/service/api/constants"
	"github.com/darkkaiser/healthcheck-server/internal/service/api/handler/health"
	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 헬스체크 HTTP 서버의 생명주기를 관리하는 서비스입니다.
//
// 이 서비스는 다음과 같은 역할을 수행합니다:
//   - Echo 기반 HTTP 서버 시작 및 종료
//   - 미들웨어 체인과 라우트 설정
//   - 서비스 상태 관리 (시작/중지)
//   - Graceful Shutdown 지원
//
// Start()는 포트를 연 뒤 즉시 반환하고, 서버는 고루틴에서 실행됩니다. 종료는 context 취소로 요청합니다.
type Service struct {
	appConfig *config.AppConfig

	healthChecker health.HealthChecker

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, healthChecker health.HealthChecker, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if healthChecker == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Service{
		appConfig: appConfig,

		healthChecker: healthChecker,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 처리 순서:
//  1. 중복 실행 확인
//  2. Echo 서버 설정 (핸들러, 미들웨어, 라우트)
//  3. 포트 바인딩 (실패 시 에러 반환)
//  4. HTTP 서버 실행 및 종료 대기 (별도 고루틴)
//
// 포트 바인딩은 호출한 고루틴에서 수행하므로, 포트가 이미 사용 중이면 서버를 띄우지 않고 바로 에러를 반환합니다.
// 에러를 반환하거나 이미 실행 중인 경우에도 serviceStopWG.Done()은 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	checker := newInflightChecker(s.healthChecker)
	e := s.setupServer(checker)

	port := s.appConfig.HTTPServer.ListenPort
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		serviceStopWG.Done()
		return newErrListenFailed(port, err)
	}
	e.Listener = ln

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG, e, checker)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Info(constants.LogMsgServiceStarted)

	return nil
}

// runServiceLoop HTTP 서버를 실행하고 종료 신호를 기다립니다.
//
// 서버가 멈춘 뒤에도 남아 있는 헬스체크는 취소하고 프로브 프로세스가 회수된 다음에 serviceStopWG.Done()을 호출합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, e *echo.Echo, checker *inflightChecker) {
	defer serviceStopWG.Done()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone, checker)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer(checker health.HealthChecker) *echo.Echo {
	healthHandler := health.New(checker, s.buildInfo)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		AccessLog:    s.appConfig.HTTPServer.AccessLog,
		ProbeTimeout: s.appConfig.Probe.Timeout,
	})

	RegisterRoutes(e, healthHandler)

	return e
}

// startHTTPServer 미리 열어 둔 Listener로 HTTP 서버를 실행합니다.
// 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"addr": e.Listener.Addr().String(),
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	// Listener가 설정되어 있으면 Echo는 주소 인자를 사용하지 않습니다.
	s.handleServerError(e.Start(""))
}

// handleServerError HTTP 서버가 반환한 에러를 처리합니다.
//
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Graceful Shutdown에 의한 정상 종료
//   - 그 외: Error 레벨 로깅
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTPServer.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
//
// 진행 중인 헬스체크 요청은 ShutdownTimeout 안에서 끝날 때까지 기다립니다.
// 그 안에 끝나지 않은 요청의 프로브는 연결을 닫은 뒤 강제 종료하고, 회수될 때까지 기다립니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}, checker *inflightChecker) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 이미 종료되었으므로 Shutdown 호출 없이 상태만 정리
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		checker.stop()
		s.cleanup()

		return
	}

	timeout := s.appConfig.HTTPServer.ShutdownTimeout
	if timeout <= 0 {
		timeout = constants.DefaultShutdownTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)

		// 제한 시간 안에 끝나지 않은 연결은 강제로 닫습니다.
		_ = e.Close()
	}

	checker.stop()

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
