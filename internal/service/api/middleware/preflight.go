package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Preflight OPTIONS 요청에 라우팅 없이 본문이 비어 있는 200 응답을 보내는 미들웨어를 반환합니다.
//
// CORS 헤더는 앞단의 게이트웨이가 관리하므로 여기서는 추가하지 않습니다.
// 경로와 무관하게 동작해야 하므로 e.Pre()로 등록합니다.
func Preflight() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodOptions {
				return next(c)
			}
			return c.NoContent(http.StatusOK)
		}
	}
}
