package middleware

import (
	"strconv"
	"time"

	"github.com/darkkaiser/healthcheck-server/internal/service/api/constants"
	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없을 때 bytes_in 필드에 기록할 값입니다.
const defaultBytesIn = "0"

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 헬스체크는 모니터링 시스템이 주기적으로 호출하므로 기본 설정에서는 등록하지 않습니다.
// http_server.access_log 설정이 켜진 경우에만 사용됩니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return logRequest(c, next)
		}
	}
}

// logRequest 다음 핸들러를 실행하고, 응답이 끝난 뒤 요청 정보를 기록합니다.
// 에러는 이 자리에서 에러 핸들러로 넘겨 최종 상태 코드가 로그에 남도록 합니다.
func logRequest(c echo.Context, next echo.HandlerFunc) error {
	req := c.Request()
	res := c.Response()
	start := time.Now()

	defer func() {
		latency := time.Since(start)

		path := req.URL.Path
		if path == "" {
			path = "/"
		}

		bytesIn := req.Header.Get(echo.HeaderContentLength)
		if bytesIn == "" {
			bytesIn = defaultBytesIn
		}

		applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
			"method":   req.Method,
			"path":     path,
			"uri":      req.RequestURI,
			"host":     req.Host,
			"protocol": req.Proto,

			"remote_ip":  c.RealIP(),
			"user_agent": req.UserAgent(),

			"status":    res.Status,
			"bytes_in":  bytesIn,
			"bytes_out": strconv.FormatInt(res.Size, 10),

			"latency":       strconv.FormatInt(latency.Microseconds(), 10),
			"latency_human": latency.String(),

			"request_id": res.Header().Get(echo.HeaderXRequestID),
		}).Info(constants.LogMsgHTTPRequest)
	}()

	if err := next(c); err != nil {
		c.Error(err)
	}

	return nil
}
