package api

import (
	"github.com/darkkaiser/healthcheck-server/internal/service/api/handler/health"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
// 경로는 쿼리 스트링까지 포함해 정확히 일치해야 하며(RejectQuery), 그 밖의 경로와 GET 이외의 메서드는
// 전역 에러 핸들러가 404로 응답합니다.
func RegisterRoutes(e *echo.Echo, h *health.Handler) {
	e.GET("/", h.HealthCheckHandler)
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/ping", h.PingHandler)
	e.GET("/version", h.VersionHandler)
}
