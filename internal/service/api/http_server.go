package api

import (
	"time"

	"github.com/darkkaiser/healthcheck-server/internal/service/api/constants"
	"github.com/darkkaiser/healthcheck-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/healthcheck-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AccessLog 요청마다 접근 로그를 남길지 여부
	// 헬스체크는 짧은 주기로 반복 호출되므로 기본값은 false입니다.
	AccessLog bool

	// ProbeTimeout 프로브 제한 시간
	// 응답 쓰기 제한 시간(WriteTimeout)은 이 값에 constants.WriteTimeoutMargin을 더해 정합니다.
	ProbeTimeout time.Duration
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. Preflight (e.Pre) - 라우팅 전에 OPTIONS 요청에 200으로 응답
//  2. RejectQuery (e.Pre) - 쿼리 스트링이 붙은 요청은 404로 응답
//  3. PanicRecovery - 핸들러 panic을 복구하여 500 응답으로 변환
//  4. RequestID - 요청마다 UUID 부여 (로그 추적용)
//  5. HTTPLogger - 접근 로그 (AccessLog 설정 시에만)
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = cfg.ProbeTimeout + constants.WriteTimeoutMargin
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 프레임워크와 net/http 서버의 내부 로그를 애플리케이션 로거로 통합합니다.
	// Echo는 서버 시작 시 http.Server.ErrorLog를 e.StdLogger로 덮어쓰므로 e.StdLogger에 설정합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.StdLogger = applog.NewStdLogger(constants.ComponentHTTPServer, applog.WarnLevel)

	e.HTTPErrorHandler = httputil.ErrorHandler

	e.Pre(appmiddleware.Preflight())
	e.Pre(appmiddleware.RejectQuery())

	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.RequestID())
	if cfg.AccessLog {
		e.Use(appmiddleware.HTTPLogger())
	}

	return e
}
