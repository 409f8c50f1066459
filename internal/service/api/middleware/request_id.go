package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestID 요청마다 UUID 형식의 X-Request-Id 헤더를 부여하는 미들웨어를 반환합니다.
// 클라이언트가 보낸 X-Request-Id가 있으면 그 값을 그대로 사용합니다.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}
