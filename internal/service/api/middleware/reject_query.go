package middleware

import (
	"github.com/labstack/echo/v4"
)

// RejectQuery 쿼리 스트링이 붙은 요청을 라우팅하지 않고 404(echo.ErrNotFound)로 끝내는 미들웨어를 반환합니다.
//
// 헬스체크 경로는 요청 라인의 경로 전체와 정확히 일치할 때만 처리합니다. 값이 없는 "?"도 쿼리로 봅니다.
// OPTIONS 요청은 Preflight가 먼저 응답하므로 e.Pre()에서 Preflight 뒤에 등록합니다.
func RejectQuery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := c.Request().URL
			if u.RawQuery != "" || u.ForceQuery {
				return echo.ErrNotFound
			}
			return next(c)
		}
	}
}
