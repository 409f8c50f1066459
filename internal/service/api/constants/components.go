package constants

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	// ComponentService 서비스 컴포넌트 이름
	ComponentService = "api.service"

	// ComponentHTTPServer net/http 서버 내부 로그(http.Server.ErrorLog)의 컴포넌트 이름
	ComponentHTTPServer = "api.http_server"

	// ComponentHandlerHealth 헬스체크 핸들러 컴포넌트 이름
	ComponentHandlerHealth = "api.handler.health"

	// ComponentMiddlewarePanicRecovery 패닉 복구 미들웨어 컴포넌트 이름
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"

	// ComponentMiddlewareHTTPLogger 접근 로그 미들웨어 컴포넌트 이름
	ComponentMiddlewareHTTPLogger = "api.middleware.http_logger"

	// ComponentErrorHandler 에러 핸들러 컴포넌트 이름
	ComponentErrorHandler = "api.error_handler"
)
