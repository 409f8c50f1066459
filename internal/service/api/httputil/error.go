package httputil

import (
	"errors"
	"net/http"
	"time"

	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
	"github.com/darkkaiser/healthcheck-server/internal/service/api/constants"
	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// now 테스트에서 타임스탬프를 고정할 수 있도록 변수로 둡니다.
var now = time.Now

// ErrorEnvelope 에러 응답 본문입니다.
type ErrorEnvelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"` // Unix epoch 밀리초
}

// NewErrorEnvelope 현재 시각을 타임스탬프로 갖는 ErrorEnvelope를 생성합니다.
func NewErrorEnvelope(message string) ErrorEnvelope {
	return ErrorEnvelope{
		Status:    constants.ErrorEnvelopeStatus,
		Message:   message,
		Timestamp: now().UnixMilli(),
	}
}

// NewInternalServerError 500 에러를 생성합니다.
// message는 클라이언트에게 그대로 전달되고, cause는 로그에만 기록됩니다.
func NewInternalServerError(message string, cause error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, message).SetInternal(cause)
}

// WriteNotFound 404 응답을 전송합니다.
func WriteNotFound(c echo.Context) error {
	return c.Blob(http.StatusNotFound, echo.MIMEApplicationJSON, []byte(constants.NotFoundBody))
}

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 라우팅 실패(404, 405)는 모두 NotFound 본문으로 응답하고, 그 밖의 에러는 ErrorEnvelope로 변환합니다.
// 문자열 메시지를 갖지 않는 에러는 내부 정보가 노출되지 않도록 공통 메시지로 대체합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	// cause 클라이언트에게 노출되지 않는 실제 원인 (로그 전용)
	cause := err

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" {
			message = msg
		}
		cause = he.Internal
	}

	notFound := code == http.StatusNotFound || code == http.StatusMethodNotAllowed

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
	}
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		fields["request_id"] = requestID
	}
	if cause != nil {
		fields["error_type"] = apperrors.UnderlyingType(cause).String()
		if root := apperrors.RootCause(cause); root != cause {
			fields["root_cause"] = root.Error()
		}
	}

	switch {
	case code >= http.StatusInternalServerError:
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	case notFound:
		// 스캐너 등의 잘못된 경로 요청은 흔하므로 디버그 레벨로만 남깁니다.
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Debug(constants.LogMsgHTTP4xxClientError)
	case code >= http.StatusBadRequest:
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지: 이미 응답이 전송된 경우 추가 응답 시도하지 않음
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		if notFound {
			code = http.StatusNotFound
		}
		_ = c.NoContent(code)
		return
	}

	if notFound {
		_ = WriteNotFound(c)
		return
	}

	_ = c.JSON(code, NewErrorEnvelope(message))
}
