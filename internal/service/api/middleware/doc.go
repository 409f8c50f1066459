// Package middleware Echo 프레임워크를 위한 HTTP 미들웨어를 제공합니다.
//
// 제공되는 미들웨어:
//
//   - Preflight: OPTIONS 요청에 라우팅 없이 200 응답
//   - PanicRecovery: 패닉 복구 및 에러 로깅
//   - RequestID: UUID 기반 X-Request-Id 부여
//   - HTTPLogger: HTTP 요청/응답 접근 로그 (설정으로 활성화)
//   - Logger: Echo 로거를 애플리케이션 로거로 연결하는 어댑터
//
// 사용 예시:
//
//	e := echo.New()
//	e.Pre(middleware.Preflight())
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.RequestID())
package middleware
